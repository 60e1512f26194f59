package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// InterpolateColor blends two #RRGGBB colors; pos 0 is colorA, 1 is colorB.
func InterpolateColor(colorA, colorB string, pos float64) string {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	r1, g1, b1 := ParseHexColor(colorA)
	r2, g2, b2 := ParseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos + 0.5)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos + 0.5)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos + 0.5)
	return FormatHexColor(r, g, b)
}

// ParseHexColor extracts RGB values from a #RRGGBB string. Malformed input
// yields black.
func ParseHexColor(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	if len(hex) == 6 {
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, 0, 0
		}
	}
	return r, g, b
}

// FormatHexColor converts RGB values to a #rrggbb string.
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ApplyGradient colors each rune of text along a gradient from one hex
// color to another. Spaces are left unstyled.
func ApplyGradient(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(InterpolateColor(from, to, pos)))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}
