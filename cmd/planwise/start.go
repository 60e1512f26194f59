package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/planwise/internal/config"
	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/logger"
	"github.com/mark3labs/planwise/internal/relay"
	"github.com/mark3labs/planwise/internal/tui/intakewizard"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the interactive planning wizard",
	Long: `Run the interactive planning wizard.

The wizard asks six short screens of questions and posts the answers to the
configured form relay when you submit from the last screen. Nothing is sent
if you quit early.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./planwise.yml
Global config: ~/.config/planwise/planwise.yml`,
	RunE: runStart,
}

func init() {
	addConfigFlags(startCmd)
}

// addConfigFlags registers the flags config.Load knows how to bind.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", "", "Form relay URL the answers are posted to")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().String("log-file", "", "Append logs to this file")
}

// loadClient resolves config, configures logging and builds the relay
// client.
func loadClient(cmd *cobra.Command) (*relay.Client, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	if !config.Exists() {
		logger.Debug("no config file found, using defaults and environment")
	}
	logger.Debug("config loaded: endpoint=%s", cfg.Endpoint)
	return relay.New(cfg.Endpoint), nil
}

func runStart(cmd *cobra.Command, args []string) error {
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}

	err = intakewizard.Run(cmd.Context(), intake.New(), client)
	if errors.Is(err, intakewizard.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "No answers were sent.")
		return nil
	}
	return err
}
