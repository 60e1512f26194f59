package intakewizard

import (
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/logger"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

const (
	submitLabel  = "Submit and request my review →"
	sendingLabel = "Sending..."
)

// ContactStep collects the contact handle and owns the submit control.
type ContactStep struct {
	w         *intake.Wizard
	def       intake.Step
	input     textinput.Model
	buttonBar *wizard.ButtonBar
	spinner   spinner.Model
	onButton  bool // focus is on the submit button rather than the input
	width     int
	height    int
}

func newContactStep(w *intake.Wizard) *ContactStep {
	input := wizard.NewTextInput("0912-345-678", 80)
	input.SetValue(w.Answers().ContactInfo)

	s := &ContactStep{
		w:     w,
		def:   w.Steps()[intake.StepContact],
		input: input,
		buttonBar: wizard.NewButtonBar([]wizard.Button{
			{ID: wizard.ButtonSubmit, Label: submitLabel},
		}),
		spinner: newSpinner(),
	}
	s.refresh()
	return s
}

func (s *ContactStep) Init() tea.Cmd { return s.FocusFirst() }

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))
	return sp
}

// FocusFirst focuses the contact input and syncs the submit button, since
// the name may have changed on an earlier step.
func (s *ContactStep) FocusFirst() tea.Cmd {
	s.onButton = false
	s.refresh()
	s.buttonBar.Blur()
	return s.input.Focus()
}

// FocusLast focuses the submit button when it is enabled, else the input.
func (s *ContactStep) FocusLast() tea.Cmd {
	s.refresh()
	if s.buttonBar.FocusFirst() {
		s.onButton = true
		s.input.Blur()
		return nil
	}
	return s.FocusFirst()
}

// Blur removes focus from the input and the button.
func (s *ContactStep) Blur() {
	s.onButton = false
	s.input.Blur()
	s.buttonBar.Blur()
}

// Spin starts the in-flight spinner. Each attempt gets a fresh spinner so
// ticks left over from an earlier attempt are dropped.
func (s *ContactStep) Spin() tea.Cmd {
	s.spinner = newSpinner()
	s.refresh()
	return s.spinner.Tick
}

// refresh syncs the submit button with the controller.
func (s *ContactStep) refresh() {
	if s.w.Phase() == intake.PhaseSubmitting {
		s.buttonBar.SetLabel(wizard.ButtonSubmit, s.spinner.View()+" "+sendingLabel)
	} else {
		s.buttonBar.SetLabel(wizard.ButtonSubmit, submitLabel)
	}
	s.buttonBar.SetEnabled(wizard.ButtonSubmit, s.w.CanSubmit())
	if s.onButton && !s.buttonBar.IsFocused() {
		s.onButton = false
	}
}

// Update handles typing, focus and the submit key.
func (s *ContactStep) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if s.w.Phase() != intake.PhaseSubmitting {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		s.refresh()
		return cmd
	}

	key, isKey := msg.(tea.KeyPressMsg)
	if isKey {
		switch key.String() {
		case "tab", "shift+tab":
			if s.onButton {
				return s.FocusFirst()
			}
			return s.FocusLast()
		case "enter":
			return s.submit()
		}
		if s.onButton {
			switch key.String() {
			case "space", " ":
				return s.submit()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != s.w.Answers().ContactInfo {
		if err := s.w.SetContactInfo(v); err != nil {
			logger.Warn("intakewizard: set contact: %v", err)
		}
	}
	s.refresh()
	return cmd
}

func (s *ContactStep) submit() tea.Cmd {
	if !s.w.CanSubmit() {
		return nil
	}
	return requestSubmit
}

// View renders the next-steps note, the input, the error line and the button.
func (s *ContactStep) View() string {
	st := theme.Current().S()

	parts := []string{
		wizard.RenderMarkdown(s.def.Body, s.width),
		"",
		st.Label.Render("Contact (Line ID / mobile)"),
		s.input.View(),
	}
	if msg := s.w.ErrorMessage(); msg != "" {
		parts = append(parts, "", st.ErrorText.Render("⚠ "+msg))
	}
	if !s.w.Answers().Ready() && s.w.Phase() != intake.PhaseSubmitting {
		parts = append(parts, "", st.Muted.Render("Your name (step 1) and a contact are both needed to submit."))
	}
	parts = append(parts,
		"",
		s.buttonBar.Render(),
		"",
		wizard.RenderHintBar("tab", "focus", "enter", "submit", "esc", "back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the content area.
func (s *ContactStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
	if width > 8 {
		s.input.SetWidth(width - 4)
	}
}
