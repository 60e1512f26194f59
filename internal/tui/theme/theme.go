package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // hex, e.g. "#f59e0b"
	Secondary string
	Accent    string

	// Backgrounds (dark→light)
	BgBase    string
	BgSurface string
	BgRaised  string

	// Foregrounds (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	BorderDefault string
	BorderFocused string

	// Status colors
	Success string
	Warning string
	Error   string

	styles     *Styles
	stylesOnce sync.Once
}

var (
	current   *Theme
	currentMu sync.RWMutex
)

// Current returns the active theme, defaulting to Ledger.
func Current() *Theme {
	currentMu.RLock()
	t := current
	currentMu.RUnlock()
	if t != nil {
		return t
	}

	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = NewLedger()
	}
	return current
}

// SetCurrent replaces the active theme. Passing nil restores the default.
func SetCurrent(t *Theme) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = t
}

// S returns the pre-built styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),
		HeaderSubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		StepCounter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Bold(true),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderDefault)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderDefault)).
			Padding(1, 2),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
	}
}
