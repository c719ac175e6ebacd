package view

import (
	"fmt"
	"strings"

	"bracketctl/internal/config"
	"bracketctl/internal/tui/components"
	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle          = "bracketctl"
	appSubtitle       = "tournament bracket generator"
	generateLabel     = "Generate Bracket"
	generatingLabel   = "Generating..."
	emptyHint         = "Pick a madness level and press g to generate a bracket."
	narrowHeaderWidth = 60
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.QuitStyle.Render("Initializing...")
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.QuitStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, m.Width, m.Height)
	default:
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	header := renderHeader(m, m.Width)
	controls := renderControls(m, m.Width)
	statusBar := renderStatusBar(m, m.Width)

	layout := components.NewLayout(m.Width, m.Height)
	bodyHeight := layout.CalculateContentArea(
		lipgloss.Height(header),
		lipgloss.Height(controls),
		lipgloss.Height(statusBar),
	)

	body := renderBody(m, m.Width, bodyHeight)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return components.JoinVertical(header, controls, body, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(design.IconText(design.IconDice, appTitle)).WithWidth(width)
	if width >= narrowHeaderWidth {
		h = h.WithSubtitle(appSubtitle)
	}
	if m.Loading {
		h = h.WithSpinner(m.Spinner.View())
	}
	if m.DebugMode {
		h = h.WithRightContent(design.SubtitleStyle.Render(
			fmt.Sprintf("gen %d • %s", m.RequestGeneration, m.Phase())))
	}
	return h.Render()
}

// renderControls draws the madness slider next to the generate button.
func renderControls(m *model.Model, width int) string {
	slider := RenderSlider(m)

	label := generateLabel
	style := design.ButtonStyle
	if !m.CanGenerate() {
		label = generatingLabel
		style = design.ButtonDisabledStyle
	}
	button := style.Render(label)

	row := components.JoinHorizontal(design.TwoColumnMargin, slider, button)
	if lipgloss.Width(row) > width {
		row = components.JoinVertical(slider, button)
	}
	return lipgloss.NewStyle().Padding(design.SpaceXS, design.SpaceSM).Render(row)
}

// RenderSlider draws the madness level as a bar followed by "Madness: N/10".
func RenderSlider(m *model.Model) string {
	percent := float64(m.MadnessLevel-config.MinMadness) / float64(config.MaxMadness-config.MinMadness)
	label := design.SliderLabelStyle.Render(fmt.Sprintf("Madness: %d/%d", m.MadnessLevel, config.MaxMadness))
	return label + m.Slider.ViewAs(percent)
}

// renderBody shows exactly one of the loading line, the error or the bracket.
func renderBody(m *model.Model, width, height int) string {
	switch m.Phase() {
	case model.PhaseLoading:
		return design.LoadingStyle.Render(m.Spinner.View() + " " + model.LoadingText)
	case model.PhaseFailed:
		return design.ErrorTextStyle.Render(m.Error)
	case model.PhaseReady:
		m.BracketViewport.Width = width
		m.BracketViewport.Height = height
		if m.BracketDirty || m.BracketViewportWidth != width {
			m.BracketViewport.SetContent(RenderBracket(m.Bracket, width))
			m.BracketViewportWidth = width
			m.BracketDirty = false
		}
		return m.BracketViewport.View()
	default:
		return design.HintStyle.Render(emptyHint)
	}
}

func renderStatusBar(m *model.Model, width int) string {
	sb := components.NewStatusBar(width).
		WithLeftText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		WithRightText(components.NewPhaseIndicator(m.Phase()).Render())
	if m.StatusBarMessage != "" {
		sb = sb.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return sb.Render()
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	var lines []string
	for _, column := range m.Keys.FullHelp() {
		for _, b := range column {
			if !b.Enabled() {
				continue
			}
			lines = append(lines, fmt.Sprintf("%-10s %s", b.Help().Key, b.Help().Desc))
		}
	}
	lines = append(lines, fmt.Sprintf("%-10s %s", "0-9", "set madness level"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
	overlay := design.CenteredOverlayContainerStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}
