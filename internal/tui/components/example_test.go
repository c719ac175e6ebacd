package components_test

import (
	"fmt"
	"strings"

	"bracketctl/internal/tui/components"
	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/model"
)

// ExamplePanel renders the national champion block.
func ExamplePanel() {
	panel := components.NewPanel("National Champion").
		WithContent("East (1)").
		WithWidth(40).
		WithType(components.PanelTypeChampion).
		WithIcon(design.IconTrophy)

	output := panel.Render()
	fmt.Println(strings.Contains(output, "East (1)"))
	// Output: true
}

// ExamplePhaseIndicator shows the text-only form used in narrow terminals.
func ExamplePhaseIndicator() {
	fmt.Println(components.NewPhaseIndicator(model.PhaseLoading).TextOnly().Render())
	// Output: Generating
}

// ExampleHeader demonstrates header component usage
func ExampleHeader() {
	header := components.NewHeader("bracketctl").
		WithSubtitle("tournament bracket generator").
		WithWidth(80)

	output := header.Render()
	fmt.Println(len(output) > 0)
	// Output: true
}

// ExampleStatusBar demonstrates status bar usage
func ExampleStatusBar() {
	statusBar := components.NewStatusBar(80).
		WithLeftText("g generate • ? help").
		WithRightText("Idle")

	output := statusBar.Render()
	fmt.Println(len(output) > 0)
	// Output: true
}
