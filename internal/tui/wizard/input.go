package wizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/tui/theme"
)

// NewTextInput returns a single-line input styled with the current theme.
func NewTextInput(placeholder string, charLimit int) textinput.Model {
	t := theme.Current()

	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.CharLimit = charLimit
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBright)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	return input
}
