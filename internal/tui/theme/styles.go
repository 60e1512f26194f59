package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the wizard screens.
type Styles struct {
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	StepCounter    lipgloss.Style
	Icon           lipgloss.Style
	Body           lipgloss.Style
	Muted          lipgloss.Style
	Label          lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	Modal lipgloss.Style

	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
}
