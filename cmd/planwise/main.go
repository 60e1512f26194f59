package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/planwise/internal/logger"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ █   ▄▀█ █▄ █ █ █ █ █ █▀ █▀▀"
	logoText2 = "█▀▀ █▄▄ █▀█ █ ▀█ ▀▄▀▄▀ █ ▄█ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Financial planning check-up in your terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewLedger()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

planwise walks a prospective client through a short financial planning
questionnaire: life stage, goals, current assets, worries and a contact
handle. The answers are posted as one JSON record to a form relay so the
advisor can prepare a first review.

Run 'planwise start' for the interactive wizard, or 'planwise submit' to
send a prepared answers file.`

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(setupCmd)
}
