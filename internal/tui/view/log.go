package view

import (
	"strings"

	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderLogOverlay sizes the log viewport to the overlay and draws it.
func renderLogOverlay(m *model.Model, width, height int) string {
	style := design.LogOverlayStyle
	title := design.LogPanelTitleStyle.Render(
		design.IconText(design.IconScroll, "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"))

	m.LogViewport.Width = width - style.GetHorizontalFrameSize()
	m.LogViewport.Height = height - style.GetVerticalFrameSize() - lipgloss.Height(title)
	if m.LogViewport.Height < 0 {
		m.LogViewport.Height = 0
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
// The viewport handles overflow, so lines are not truncated.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine picks a style from the level marker in the line.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
