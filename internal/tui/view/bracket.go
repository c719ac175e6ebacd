package view

import (
	"strings"

	"bracketctl/internal/bracket"
	"bracketctl/internal/tui/components"
	"bracketctl/internal/tui/design"
)

// RenderBracket lays the bracket out for the given width. Wide terminals get
// the left half of the draw in one column and the right half in the other;
// narrow ones stack the regions top_left, bottom_left, top_right, bottom_right.
func RenderBracket(r *bracket.Result, width int) string {
	if r == nil {
		return ""
	}

	if width < design.MinRegionWidth*2+design.ColumnGap {
		blocks := make([]string, 0, len(bracket.RegionOrder)+2)
		for _, region := range r.Regions() {
			blocks = append(blocks, renderRegion(region, width))
		}
		blocks = append(blocks, renderFinalFour(r, width), renderChampion(r, width))
		return components.JoinVertical(blocks...)
	}

	// Column-major: reading down the left column then the right one keeps
	// RegionOrder, matching where each quarter sits in a printed bracket.
	leftWidth, rightWidth := components.NewLayout(width, 0).SplitVertical(0.5, design.ColumnGap)
	left := components.JoinVertical(
		renderRegion(r.Region(bracket.TopLeft), leftWidth),
		renderRegion(r.Region(bracket.BottomLeft), leftWidth),
	)
	right := components.JoinVertical(
		renderRegion(r.Region(bracket.TopRight), rightWidth),
		renderRegion(r.Region(bracket.BottomRight), rightWidth),
	)

	return components.JoinVertical(
		components.JoinHorizontal(design.ColumnGap, left, right),
		components.JoinHorizontal(design.ColumnGap,
			renderFinalFour(r, leftWidth),
			renderChampion(r, rightWidth),
		),
	)
}

func renderRegion(region bracket.Region, width int) string {
	lines := []string{design.RegionTitleStyle.Render(region.Heading())}
	for _, row := range region.Rows() {
		if row.Highlight {
			lines = append(lines, design.ChampionStyle.Render(row.Label+": "+row.Value))
			continue
		}
		lines = append(lines, design.RoundLabelStyle.Render(row.Label+":")+" "+row.Value)
	}

	style := design.RegionStyle
	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func renderFinalFour(r *bracket.Result, width int) string {
	rows := r.FinalFourRows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Label + ": " + row.Value
	}
	return components.NewPanel(bracket.TitleFinalFour).
		WithWidth(width).
		WithContent(strings.Join(lines, "\n")).
		Render()
}

func renderChampion(r *bracket.Result, width int) string {
	return components.NewPanel(bracket.TitleNationalChampion).
		WithWidth(width).
		WithType(components.PanelTypeChampion).
		WithIcon(design.IconTrophy).
		WithContent(design.ChampionStyle.Render(r.NationalChampion.String())).
		Render()
}
