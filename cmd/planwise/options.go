package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the answer options for each question",
	Long: `List the answer options for each question.

The KEY column is what an answers file may use; VALUE is what is sent to
the relay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printOptions(cmd.OutOrStdout())
	},
}

// optionGroups pairs each answers-file key with its catalog.
var optionGroups = []struct {
	key  string
	opts []intake.Option
}{
	{"stage", intake.StageOptions},
	{"financial_goals", intake.GoalOptions},
	{"investment_experience", intake.InstrumentOptions},
	{"monthly_savings", intake.SavingsOptions},
	{"concerns", intake.ConcernOptions},
}

func printOptions(out io.Writer) error {
	t := theme.Current()
	st := t.S()
	header := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)).Padding(0, 1)

	for i, g := range optionGroups {
		if i > 0 {
			fmt.Fprintln(out)
		}
		tbl := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderDefault))).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				return cell
			}).
			Headers("KEY", "LABEL", "VALUE")
		for _, o := range g.opts {
			tbl.Row(o.Key(), o.Label, o.Value)
		}
		if _, err := fmt.Fprintf(out, "%s\n%s\n", st.HeaderTitle.Render(g.key), tbl.Render()); err != nil {
			return err
		}
	}
	return nil
}
