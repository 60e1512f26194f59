package intakewizard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

// IntroStep is the landing screen. Its only control starts the wizard.
type IntroStep struct {
	def       intake.Step
	buttonBar *wizard.ButtonBar
	width     int
	height    int
}

func newIntroStep(w *intake.Wizard) *IntroStep {
	return &IntroStep{
		def: w.Steps()[intake.StepIntro],
		buttonBar: wizard.NewButtonBar([]wizard.Button{
			{ID: wizard.ButtonStart, Label: "Start my planning →"},
		}),
	}
}

func (s *IntroStep) Init() tea.Cmd       { return s.FocusFirst() }
func (s *IntroStep) FocusFirst() tea.Cmd { s.buttonBar.FocusFirst(); return nil }
func (s *IntroStep) FocusLast() tea.Cmd  { s.buttonBar.FocusLast(); return nil }
func (s *IntroStep) Blur()               { s.buttonBar.Blur() }

// Update starts the wizard on enter or space.
func (s *IntroStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", "space", " ":
			return advance
		}
	}
	return nil
}

// View renders the heading, the markdown pitch and the start button.
func (s *IntroStep) View() string {
	t := theme.Current()
	st := t.S()

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Primary)).
		Bold(true).
		Padding(0, 1).
		Render(s.def.Icon)

	return lipgloss.JoinVertical(lipgloss.Left,
		icon+" "+st.HeaderTitle.Render(s.def.Title),
		st.HeaderSubtitle.Render(s.def.Subtitle),
		"",
		wizard.RenderMarkdown(s.def.Body, s.width),
		"",
		s.buttonBar.Render(),
		"",
		wizard.RenderHintBar("enter", "start", "ctrl+c", "quit"),
	)
}

// SetSize updates the content area.
func (s *IntroStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}
