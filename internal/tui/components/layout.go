package components

import (
	"strings"

	"bracketctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout splits the space available to the bracket body.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitVertical splits the width into two columns separated by gap.
// Each column keeps at least MinPanelWidth cells.
func (l *Layout) SplitVertical(leftPercent float64, gap int) (leftWidth, rightWidth int) {
	usable := l.Width - gap
	if usable < design.MinPanelWidth*2 {
		usable = design.MinPanelWidth * 2
	}

	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}

	leftWidth = int(float64(usable) * leftPercent)
	rightWidth = usable - leftWidth

	if leftWidth < design.MinPanelWidth {
		leftWidth = design.MinPanelWidth
		rightWidth = usable - leftWidth
	}
	if rightWidth < design.MinPanelWidth {
		rightWidth = design.MinPanelWidth
		leftWidth = usable - rightWidth
	}
	return leftWidth, rightWidth
}

// CalculateContentArea returns the height left after the fixed rows.
func (l *Layout) CalculateContentArea(fixedHeights ...int) int {
	contentHeight := l.Height
	for _, h := range fixedHeights {
		contentHeight -= h
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}
