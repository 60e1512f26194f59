package main

import (
	"fmt"

	"github.com/mark3labs/planwise/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create planwise configuration file",
	Long: `Create a planwise configuration file with sensible defaults.

By default, creates a global config at ~/.config/planwise/planwise.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && config.FileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(config.Default())
	} else {
		err = config.WriteGlobal(config.Default())
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'planwise start' to get started.")
	return nil
}
