package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mark3labs/planwise/internal/tui/theme"
)

// RenderHintBar renders key/description pairs separated by bullets.
// Example: RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// gives "↑↓ navigate • enter select • esc back".
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// RenderProgress draws a one-line bar of width cells filled to frac.
func RenderProgress(width int, frac float64) string {
	if width <= 0 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	t := theme.Current()

	filled := int(frac*float64(width) + 0.5)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgRaised)).
		Render(strings.Repeat("─", width-filled))
	return theme.ApplyGradient(strings.Repeat("━", filled), t.Accent, t.Secondary) + empty
}
