package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/tui/theme"
)

// OptionItem is one row of an OptionList.
type OptionItem struct {
	Value       string
	Label       string
	Description string
}

// OptionList is a cursor-driven list of options, either radio (single) or
// checkbox (multi). It holds no selection state of its own: IsSelected is
// asked when rendering and OnPick is called when the user picks a row.
type OptionList struct {
	items   []OptionItem
	cursor  int
	multi   bool
	focused bool

	isSelected func(value string) bool
	onPick     func(value string)
}

// NewOptionList creates a blurred option list.
func NewOptionList(items []OptionItem, multi bool, isSelected func(string) bool, onPick func(string)) *OptionList {
	return &OptionList{
		items:      items,
		multi:      multi,
		isSelected: isSelected,
		onPick:     onPick,
	}
}

// Len returns the number of items.
func (l *OptionList) Len() int { return len(l.items) }

// Cursor returns the index of the highlighted item.
func (l *OptionList) Cursor() int { return l.cursor }

// CursorUp moves the cursor up, stopping at the first item.
func (l *OptionList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// CursorDown moves the cursor down, stopping at the last item.
func (l *OptionList) CursorDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Pick picks the highlighted item.
func (l *OptionList) Pick() {
	if len(l.items) == 0 || l.onPick == nil {
		return
	}
	l.onPick(l.items[l.cursor].Value)
}

func (l *OptionList) Focus()          { l.focused = true }
func (l *OptionList) Blur()           { l.focused = false }
func (l *OptionList) IsFocused() bool { return l.focused }

// Update handles navigation and picking while focused.
func (l *OptionList) Update(msg tea.Msg) tea.Cmd {
	if !l.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.CursorUp()
		case "down", "j":
			l.CursorDown()
		case "space", " ", "enter", "x":
			l.Pick()
		}
	}
	return nil
}

// View renders the list.
func (l *OptionList) View() string {
	t := theme.Current()
	var b strings.Builder

	for i, item := range l.items {
		selected := l.isSelected != nil && l.isSelected(item.Value)

		indicator := "○"
		if l.multi {
			indicator = "☐"
		}
		if selected {
			indicator = "●"
			if l.multi {
				indicator = "☑"
			}
		}

		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
		if selected {
			style = style.Foreground(lipgloss.Color(t.Secondary))
		}
		if i == l.cursor && l.focused {
			cursor = "▶ "
			style = style.Foreground(lipgloss.Color(t.Primary)).Bold(true)
		}

		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, indicator, item.Label)))
		b.WriteString("\n")
		if item.Description != "" {
			desc := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
			b.WriteString(desc.Render("      " + item.Description))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
