package bracket

import (
	"fmt"
	"strings"
)

// Markdown renders the bracket as a Markdown document with one table per region.
func Markdown(r *Result) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Bracket\n\n")
	for _, region := range r.Regions() {
		fmt.Fprintf(&b, "## %s\n\n", region.Heading())
		b.WriteString("| Round | Teams |\n")
		b.WriteString("|---|---|\n")
		for _, row := range region.Rows() {
			label, value := escapeCell(row.Label), escapeCell(row.Value)
			if row.Highlight && value != "" {
				label, value = "**"+label+"**", "**"+value+"**"
			}
			fmt.Fprintf(&b, "| %s | %s |\n", label, value)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", TitleFinalFour)
	for _, row := range r.FinalFourRows() {
		fmt.Fprintf(&b, "- %s: %s\n", row.Label, row.Value)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n**%s**\n", TitleNationalChampion, r.NationalChampion.String())
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
