package design

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "✘" // U+2718
	IconHourglass = "⏳" // U+23F3
	IconTrophy    = "🏆" // U+1F3C6
	IconDice      = "🎲" // U+1F3B2
	IconScroll    = "📜" // U+1F4DC
	IconCircle    = "○" // U+25CB
)

// SafeIcon appends enough spaces after icon that wide glyphs
// don't swallow the following character.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
