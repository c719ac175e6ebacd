package controller

import (
	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg stores the new terminal size and resizes the widgets
// whose width is not derived at render time.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	sliderWidth := msg.Width / 3
	if sliderWidth > design.SliderMaxWidth {
		sliderWidth = design.SliderMaxWidth
	}
	if sliderWidth < design.SliderMinWidth {
		sliderWidth = design.SliderMinWidth
	}
	m.Slider.Width = sliderWidth
	return m, nil
}
