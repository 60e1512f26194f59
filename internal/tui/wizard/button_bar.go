package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/tui/theme"
)

// ButtonID identifies a button so callers can react to activation.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonBack
	ButtonNext
	ButtonStart
	ButtonSubmit
	ButtonClose
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // enabled
	ButtonDisabled                    // grayed out, skipped by focus
	ButtonFocused                     // highlighted
)

// Button is a single entry in a ButtonBar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar renders a row of buttons and tracks which one has focus.
type ButtonBar struct {
	buttons []Button
	focus   int // index into buttons, -1 when blurred
	width   int
}

// NewButtonBar creates a blurred button bar.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetWidth sets the width the bar is centered in.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetEnabled enables or disables the button with id. Disabling the focused
// button blurs the bar.
func (b *ButtonBar) SetEnabled(id ButtonID, enabled bool) {
	for i := range b.buttons {
		if b.buttons[i].ID != id {
			continue
		}
		switch {
		case !enabled:
			b.buttons[i].State = ButtonDisabled
			if b.focus == i {
				b.focus = -1
			}
		case b.focus == i:
			b.buttons[i].State = ButtonFocused
		default:
			b.buttons[i].State = ButtonNormal
		}
	}
}

// SetLabel changes the label of the button with id.
func (b *ButtonBar) SetLabel(id ButtonID, label string) {
	for i := range b.buttons {
		if b.buttons[i].ID == id {
			b.buttons[i].Label = label
		}
	}
}

// Enabled reports whether the button with id exists and is not disabled.
func (b *ButtonBar) Enabled(id ButtonID) bool {
	for _, btn := range b.buttons {
		if btn.ID == id {
			return btn.State != ButtonDisabled
		}
	}
	return false
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	return b.focusFrom(0, 1)
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	return b.focusFrom(len(b.buttons)-1, -1)
}

// FocusNext moves focus right. It returns false when there is no enabled
// button to the right; focus is unchanged in that case.
func (b *ButtonBar) FocusNext() bool {
	if b.focus < 0 {
		return b.FocusFirst()
	}
	return b.focusFrom(b.focus+1, 1)
}

// FocusPrev moves focus left. It returns false when there is no enabled
// button to the left; focus is unchanged in that case.
func (b *ButtonBar) FocusPrev() bool {
	if b.focus < 0 {
		return b.FocusLast()
	}
	return b.focusFrom(b.focus-1, -1)
}

func (b *ButtonBar) focusFrom(start, dir int) bool {
	for i := start; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State == ButtonDisabled {
			continue
		}
		b.setFocus(i)
		return true
	}
	return false
}

func (b *ButtonBar) setFocus(idx int) {
	for i := range b.buttons {
		if b.buttons[i].State == ButtonFocused {
			b.buttons[i].State = ButtonNormal
		}
	}
	b.focus = idx
	if idx >= 0 {
		b.buttons[idx].State = ButtonFocused
	}
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	b.setFocus(-1)
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focus >= 0
}

// FocusedButton returns the id of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focus < 0 {
		return ButtonNone
	}
	return b.buttons[b.focus].ID
}

// Render renders the bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	t := theme.Current()

	base := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	normalStyle := base.
		Foreground(lipgloss.Color(t.FgBright)).
		Background(lipgloss.Color(t.BgRaised))
	disabledStyle := base.
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgSurface))
	focusedStyle := base.
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Primary)).
		Bold(true)

	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// BackNextButtons returns the standard Back/Next pair.
func BackNextButtons(backEnabled, nextEnabled bool) []Button {
	state := func(enabled bool) ButtonState {
		if enabled {
			return ButtonNormal
		}
		return ButtonDisabled
	}
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: state(backEnabled)},
		{ID: ButtonNext, Label: "Next →", State: state(nextEnabled)},
	}
}
