package components

import (
	"strings"

	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeChampion
)

// String returns the panel type name.
func (pt PanelType) String() string {
	switch pt {
	case PanelTypeDefault:
		return "Default"
	case PanelTypeSuccess:
		return "Success"
	case PanelTypeError:
		return "Error"
	case PanelTypeWarning:
		return "Warning"
	case PanelTypeChampion:
		return "Champion"
	default:
		return "Unknown"
	}
}

// Panel is a bordered block with an optional title line. Its height grows
// with its content unless a fixed height is set.
type Panel struct {
	Title   string
	Icon    string
	Content string
	Width   int
	Height  int
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
		Type:  PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithWidth sets the outer panel width
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithDimensions sets a fixed outer size. A zero height lets the panel grow.
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets an icon shown before the title
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height != 0 && p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			lines = append(lines, utils.TruncateWithEllipsis(line, innerWidth))
		}
	}

	if p.Height > 0 {
		innerHeight := p.Height - style.GetVerticalFrameSize()
		if innerHeight < 1 {
			innerHeight = 1
		}
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
			lines[innerHeight-1] = "..."
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	// lipgloss widths exclude the border
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel type
func (p *Panel) getStyle() lipgloss.Style {
	switch p.Type {
	case PanelTypeSuccess:
		return design.PanelStyle.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return design.PanelStyle.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return design.PanelStyle.BorderForeground(design.ColorWarning)
	case PanelTypeChampion:
		return design.PanelStyle.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(design.ColorChampion)
	default:
		return design.PanelStyle
	}
}

// renderTitle renders the panel title with optional icon
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}

	title := p.Title
	if p.Icon != "" {
		title = design.SafeIcon(p.Icon) + title
	}
	title = utils.TruncateWithEllipsis(title, width)

	titleStyle := design.TitleStyle
	if p.Type == PanelTypeChampion {
		titleStyle = design.ChampionStyle
	}
	return p.getIconStyle().Inherit(titleStyle).Render(title)
}

// getIconStyle returns the foreground used for the title line
func (p *Panel) getIconStyle() lipgloss.Style {
	switch p.Type {
	case PanelTypeSuccess:
		return design.IconSuccessStyle
	case PanelTypeError:
		return design.IconErrorStyle
	case PanelTypeWarning:
		return design.IconWarningStyle
	case PanelTypeChampion:
		return design.IconChampionStyle
	default:
		return lipgloss.NewStyle()
	}
}
