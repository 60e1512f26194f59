// Package config loads planwise settings with Viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/planwise/internal/logger"
)

// DefaultEndpoint is the form relay the intake answers are posted to.
const DefaultEndpoint = "https://formspree.io/f/mkgdqzar"

const (
	appName   = "planwise"
	envPrefix = "PLANWISE"
)

// Config holds all configuration values for planwise.
type Config struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		LogLevel: "info",
	}
}

// Load resolves configuration with the precedence
// flags > PLANWISE_* env > ./planwise.yml > global planwise.yml > defaults.
// Flags named like a key ("endpoint", "log-level", "log-file") are bound
// when flags is non-nil; only flags the user actually set take effect.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(appName)

	def := Default()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"endpoint", "log_level", "log_file"} {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if flags != nil {
		for _, key := range []string{"endpoint", "log_level", "log_file"} {
			f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", key, err)
			}
		}
	}

	if globalPath := GlobalPath(); FileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}
	if projectPath := ProjectPath(); FileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	return &cfg, nil
}

// Validate checks that the endpoint is an absolute http(s) URL and that the
// log level, when set, is known.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Exists reports whether a global or project config file is present.
func Exists() bool {
	return FileExists(GlobalPath()) || FileExists(ProjectPath())
}

// GlobalPath returns $XDG_CONFIG_HOME/planwise/planwise.yml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, appName+".yml")
}

// ProjectPath returns the config path in the working directory.
func ProjectPath() string {
	return appName + ".yml"
}

// WriteGlobal writes cfg to GlobalPath, creating its directory.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes cfg to ProjectPath.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
