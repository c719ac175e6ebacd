package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the specified display width.
// Wide runes are never split.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithEllipsis truncates s to width cells, ending in "..." when cut.
func TruncateWithEllipsis(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return TruncateString("...", width)
	}
	return runewidth.Truncate(s, width, "...")
}
