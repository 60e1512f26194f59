package intakewizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

// SubmittedStep is the terminal screen shown once the relay accepted the
// answers. Its only control leaves the program.
type SubmittedStep struct {
	name      string
	contact   string
	buttonBar *wizard.ButtonBar
	width     int
}

func newSubmittedStep(a *intake.Answers) *SubmittedStep {
	bar := wizard.NewButtonBar([]wizard.Button{{ID: wizard.ButtonClose, Label: "Close"}})
	bar.FocusFirst()
	return &SubmittedStep{
		name:      a.Name,
		contact:   a.ContactInfo,
		buttonBar: bar,
	}
}

// Update quits on enter, space, q or esc.
func (s *SubmittedStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", "space", " ", "q", "esc":
			return tea.Quit
		}
	}
	return nil
}

func (s *SubmittedStep) View() string {
	st := theme.Current().S()
	return lipgloss.JoinVertical(lipgloss.Left,
		st.SuccessText.Render("✓ Answers sent"),
		"",
		st.Body.Render(fmt.Sprintf("Thank you, %s.", s.name)),
		st.Body.Width(s.width).Render(fmt.Sprintf(
			"I will start preparing your first financial review and reach you at %s soon.", s.contact)),
		"",
		s.buttonBar.Render(),
	)
}

func (s *SubmittedStep) SetSize(width, _ int) {
	s.width = width
	s.buttonBar.SetWidth(width)
}
