package bracket

import (
	"strings"
)

// Round labels as displayed.
const (
	LabelRoundOf32        = "Round of 32"
	LabelSweet16          = "Sweet 16"
	LabelElite8           = "Elite 8"
	LabelRegionalChamp    = "Regional Champ"
	TitleFinalFour        = "Final Four"
	TitleNationalChampion = "National Champion"
)

const teamSeparator = ", "

// Row is one labelled line of a region table.
type Row struct {
	Label     string
	Value     string
	Highlight bool
}

// JoinTeams joins teams with ", " keeping their input order.
func JoinTeams(teams []Team) string {
	parts := make([]string, len(teams))
	for i, t := range teams {
		parts[i] = t.String()
	}
	return strings.Join(parts, teamSeparator)
}

// Rows returns the region's display rows; the regional champion row is highlighted.
func (r Region) Rows() []Row {
	return []Row{
		{Label: LabelRoundOf32, Value: JoinTeams(r.RoundOf32)},
		{Label: LabelSweet16, Value: JoinTeams(r.Sweet16)},
		{Label: LabelElite8, Value: JoinTeams(r.Elite8)},
		{Label: LabelRegionalChamp, Value: r.RegionalChamp.String(), Highlight: true},
	}
}

// FinalFourRows returns the Left/Right rows of the Final Four block.
func (r *Result) FinalFourRows() []Row {
	if r == nil {
		return nil
	}
	return []Row{
		{Label: "Left", Value: r.FinalFour.Left.String()},
		{Label: "Right", Value: r.FinalFour.Right.String()},
	}
}

// Text renders the bracket as plain text.
func Text(r *Result) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	for _, region := range r.Regions() {
		b.WriteString(region.Heading())
		b.WriteString("\n")
		for _, row := range region.Rows() {
			writeRow(&b, row)
		}
		b.WriteString("\n")
	}

	b.WriteString(TitleFinalFour)
	b.WriteString("\n")
	for _, row := range r.FinalFourRows() {
		writeRow(&b, row)
	}
	b.WriteString("\n")

	b.WriteString(TitleNationalChampion)
	b.WriteString("\n  ")
	b.WriteString(r.NationalChampion.String())
	b.WriteString("\n")
	return b.String()
}

func writeRow(b *strings.Builder, row Row) {
	b.WriteString("  ")
	b.WriteString(row.Label)
	b.WriteString(": ")
	b.WriteString(row.Value)
	b.WriteString("\n")
}
