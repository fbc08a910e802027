package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate trims s to fit width display columns with an … suffix when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to exactly width display columns,
// truncating first if it is too long.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// PadCenter centers s within exactly width display columns.
func PadCenter(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
