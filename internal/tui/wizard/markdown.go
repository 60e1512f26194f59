package wizard

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
)

// RenderMarkdown renders markdown for a terminal of the given width, falling
// back to plain wrapped text if glamour fails.
func RenderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 60
	}
	if width > 100 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	rendered, err := r.Render(content)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	return strings.Trim(rendered, "\n")
}
