package intakewizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

// field is one focusable element of a FormStep.
type field interface {
	focus() tea.Cmd
	blur()
	update(msg tea.Msg) tea.Cmd
	view() string
	setWidth(width int)
}

type section struct {
	label string
	field field
}

// FormStep is a step made of labelled fields. Tab and shift+tab move
// between fields and leave the step past either end.
type FormStep struct {
	def      intake.Step
	sections []section
	focused  int
	width    int
	height   int
}

func newFormStep(def intake.Step, sections ...section) *FormStep {
	return &FormStep{def: def, sections: sections, focused: -1}
}

// Init focuses the first field.
func (s *FormStep) Init() tea.Cmd { return s.FocusFirst() }

// FocusFirst focuses the first field.
func (s *FormStep) FocusFirst() tea.Cmd { return s.focusAt(0) }

// FocusLast focuses the last field.
func (s *FormStep) FocusLast() tea.Cmd { return s.focusAt(len(s.sections) - 1) }

// Blur removes focus from every field.
func (s *FormStep) Blur() {
	for _, sec := range s.sections {
		sec.field.blur()
	}
	s.focused = -1
}

func (s *FormStep) focusAt(i int) tea.Cmd {
	if i < 0 || i >= len(s.sections) {
		return nil
	}
	s.Blur()
	s.focused = i
	return s.sections[i].field.focus()
}

// Focused returns the index of the focused field, or -1.
func (s *FormStep) Focused() int { return s.focused }

// Update routes tab navigation and forwards everything else to the focused
// field.
func (s *FormStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab":
			if s.focused >= len(s.sections)-1 {
				return func() tea.Msg { return wizard.TabExitForwardMsg{} }
			}
			return s.focusAt(s.focused + 1)
		case "shift+tab":
			if s.focused <= 0 {
				return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
			}
			return s.focusAt(s.focused - 1)
		}
	}
	if s.focused < 0 {
		return nil
	}
	return s.sections[s.focused].field.update(msg)
}

// View renders the body text and every field.
func (s *FormStep) View() string {
	st := theme.Current().S()
	parts := make([]string, 0, len(s.sections)*2+1)
	if s.def.Body != "" {
		parts = append(parts, st.Body.Width(s.width).Render(s.def.Body), "")
	}
	for i, sec := range s.sections {
		if i > 0 {
			parts = append(parts, "")
		}
		if sec.label != "" {
			parts = append(parts, st.Label.Render(sec.label))
		}
		parts = append(parts, sec.field.view())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the content area.
func (s *FormStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	for _, sec := range s.sections {
		sec.field.setWidth(width)
	}
}

// listField adapts an OptionList.
type listField struct {
	list *wizard.OptionList
}

func (f *listField) focus() tea.Cmd             { f.list.Focus(); return nil }
func (f *listField) blur()                      { f.list.Blur() }
func (f *listField) update(msg tea.Msg) tea.Cmd { return f.list.Update(msg) }
func (f *listField) view() string               { return f.list.View() }
func (f *listField) setWidth(int)               {}

// inputField adapts a text input. onChange sees every new value; enter runs
// onEnter when set.
type inputField struct {
	input    textinput.Model
	onChange func(string)
	onEnter  tea.Cmd
}

func (f *inputField) focus() tea.Cmd { return f.input.Focus() }
func (f *inputField) blur()          { f.input.Blur() }

func (f *inputField) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return f.onEnter
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != before && f.onChange != nil {
		f.onChange(v)
	}
	return cmd
}

func (f *inputField) view() string { return f.input.View() }

func (f *inputField) setWidth(width int) {
	if width > 8 {
		f.input.SetWidth(width - 4)
	}
}

// optionItems converts catalog options to list rows.
func optionItems(opts []intake.Option) []wizard.OptionItem {
	items := make([]wizard.OptionItem, len(opts))
	for i, o := range opts {
		items[i] = wizard.OptionItem{Value: o.Value, Label: o.Label, Description: o.Description}
	}
	return items
}
