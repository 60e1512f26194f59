package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/relay"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	answers string
	edit    bool
	dryRun  bool
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a prepared answers file",
	Long: `Submit a prepared answers file without the interactive wizard.

The answers file is YAML with the keys name, stage, financial_goals,
investment_experience, monthly_savings, concerns and contact_info. Options
may be given by key (see 'planwise options') or by wire value.

Use --edit to open the file in $EDITOR first; a blank template is written
when the file does not exist yet. Use --dry-run to print the JSON body
instead of posting it.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFlags.answers, "answers", "a", "", "Answers file path (required)")
	submitCmd.Flags().BoolVarP(&submitFlags.edit, "edit", "e", false, "Open the answers file in $EDITOR before submitting")
	submitCmd.Flags().BoolVar(&submitFlags.dryRun, "dry-run", false, "Print the JSON body instead of posting it")
	_ = submitCmd.MarkFlagRequired("answers")
	addConfigFlags(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	path := submitFlags.answers

	if submitFlags.edit {
		if err := editAnswers(path); err != nil {
			return err
		}
	}

	w, err := loadAnswers(path)
	if err != nil {
		return err
	}

	if submitFlags.dryRun {
		body, err := relay.Encode(*w.Answers())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return nil
	}

	client, err := loadClient(cmd)
	if err != nil {
		return err
	}
	if err := w.Submit(cmd.Context(), client); err != nil {
		if msg := w.ErrorMessage(); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Answers sent. Thank you, %s.\n", w.Answers().Name)
	return nil
}

// loadAnswers reads path into a fresh wizard and checks it can be submitted.
func loadAnswers(path string) (*intake.Wizard, error) {
	f, err := intake.LoadAnswersFile(path)
	if err != nil {
		return nil, err
	}
	w := intake.New()
	if err := f.Apply(w); err != nil {
		return nil, fmt.Errorf("invalid answers file: %w", err)
	}
	if !w.CanSubmit() {
		return nil, fmt.Errorf("answers file %s: %w (name and contact_info are required)", path, intake.ErrNotReady)
	}
	return w, nil
}

// editAnswers opens path in the user's editor, writing a template first
// when the file is missing.
func editAnswers(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := intake.WriteAnswersFile(path, intake.AnswersTemplate()); err != nil {
			return err
		}
	}

	c, err := editor.Command("planwise", path)
	if err != nil {
		return fmt.Errorf("failed to prepare editor: %w", err)
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}
