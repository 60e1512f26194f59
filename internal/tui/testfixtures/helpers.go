package testfixtures

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

func init() {
	// No color output so assertions are stable across terminals.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests.
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Key builds a press of a special key such as tea.KeyEnter or tea.KeyTab.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// ShiftTab builds a shift+tab press.
func ShiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

// CtrlC builds a ctrl+c press.
func CtrlC() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
}

// Rune builds a press of a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type builds one key press per rune of s.
func Type(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}

// WindowSize builds the canonical window size message.
func WindowSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: TestTermWidth, Height: TestTermHeight}
}

// Plain strips ANSI sequences from rendered output.
func Plain(s string) string {
	return ansi.Strip(s)
}
