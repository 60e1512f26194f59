package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME and the working directory at a temp dir and
// clears PLANWISE_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, k := range []string{"PLANWISE_ENDPOINT", "PLANWISE_LOG_LEVEL", "PLANWISE_LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/planwise/planwise.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "got %s", got)
		assert.Equal(t, "planwise.yml", filepath.Base(got))
		assert.Equal(t, "planwise", filepath.Base(filepath.Dir(got)))
	})
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "planwise.yml", ProjectPath())
}

func TestExists(t *testing.T) {
	isolate(t)

	assert.False(t, Exists())
	assert.False(t, FileExists(GlobalPath()))

	require.NoError(t, WriteGlobal(Default()))
	assert.True(t, Exists())
	assert.True(t, FileExists(GlobalPath()))
	assert.False(t, FileExists(ProjectPath()))

	require.NoError(t, os.Remove(GlobalPath()))
	require.NoError(t, WriteProject(Default()))
	assert.True(t, Exists())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	require.NoError(t, WriteGlobal(&Config{
		Endpoint: "https://global.example/f/1",
		LogLevel: "warn",
		LogFile:  "/tmp/global.log",
	}))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://global.example/f/1", cfg.Endpoint)
	assert.Equal(t, "warn", cfg.LogLevel)

	// Project file only overrides the keys it sets.
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("endpoint: https://project.example/f/2\n"), 0644))
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://project.example/f/2", cfg.Endpoint)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/global.log", cfg.LogFile)

	t.Setenv("PLANWISE_ENDPOINT", "https://env.example/f/3")
	t.Setenv("PLANWISE_LOG_LEVEL", "debug")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/f/3", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.LogLevel)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("endpoint", "", "")
	require.NoError(t, flags.Parse([]string{"--endpoint", "http://localhost:8080/f/4"}))
	cfg, err = Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/f/4", cfg.Endpoint)
}

func TestLoad_UnsetFlagDoesNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PLANWISE_ENDPOINT", "https://env.example/f/3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("endpoint", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/f/3", cfg.Endpoint)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BadGlobalFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GlobalPath()), 0755))
	require.NoError(t, os.WriteFile(GlobalPath(), []byte("endpoint: [oops"), 0644))

	_, err := Load(nil)
	assert.ErrorContains(t, err, "reading global config")
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := &Config{
		Endpoint: "https://relay.example/f/abc",
		LogLevel: "debug",
		LogFile:  "/tmp/planwise.log",
	}
	require.NoError(t, WriteGlobal(cfg))

	data, err := os.ReadFile(GlobalPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "endpoint: https://relay.example/f/abc")
	assert.Contains(t, content, "log_level: debug")
	assert.Contains(t, content, "log_file: /tmp/planwise.log")
}

func TestWriteProject(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, WriteProject(Default()))

	data, err := os.ReadFile(filepath.Join(dir, "planwise.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "endpoint: "+DefaultEndpoint)
	assert.Contains(t, string(data), "log_level: info")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"default", *Default(), ""},
		{"plain http", Config{Endpoint: "http://127.0.0.1:9000/f"}, ""},
		{"empty endpoint", Config{}, "endpoint is required"},
		{"relative", Config{Endpoint: "/f/mkgdqzar"}, "scheme"},
		{"ftp", Config{Endpoint: "ftp://relay.example/f"}, "scheme"},
		{"no host", Config{Endpoint: "https:///f"}, "missing host"},
		{"unparseable", Config{Endpoint: "http://[::1"}, "invalid endpoint"},
		{"bad log level", Config{Endpoint: DefaultEndpoint, LogLevel: "chatty"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
