package bracket_test

import (
	"strings"
	"testing"

	"bracketctl/internal/bracket"
	"bracketctl/internal/bracket/brackettest"

	"github.com/stretchr/testify/assert"
)

func TestJoinTeams(t *testing.T) {
	assert.Equal(t, "", bracket.JoinTeams(nil))
	assert.Equal(t, "A", bracket.JoinTeams([]bracket.Team{"A"}))
	assert.Equal(t, "B, A, C", bracket.JoinTeams([]bracket.Team{"B", "A", "C"}))
}

func TestRegion_Rows(t *testing.T) {
	rows := brackettest.Sample().TopLeft.Rows()

	assert.Equal(t, []bracket.Row{
		{Label: "Round of 32", Value: "A, B"},
		{Label: "Sweet 16", Value: "A"},
		{Label: "Elite 8", Value: "A"},
		{Label: "Regional Champ", Value: "A", Highlight: true},
	}, rows)
}

func TestText_EndToEndScenario(t *testing.T) {
	out := bracket.Text(brackettest.Sample())

	assert.Contains(t, out, "East Region\n")
	assert.Contains(t, out, "Round of 32: A, B\n")
	assert.Contains(t, out, "Regional Champ: A\n")
	assert.Contains(t, out, "Left: East (1)\n")
	assert.Contains(t, out, "Right: West (2)\n")
	assert.True(t, strings.HasSuffix(out, "National Champion\n  East (1)\n"), "got %q", out)
}

func TestText_RegionOrder(t *testing.T) {
	out := bracket.Text(brackettest.Sample())

	east := strings.Index(out, "East Region")
	south := strings.Index(out, "South Region")
	west := strings.Index(out, "West Region")
	midwest := strings.Index(out, "Midwest Region")
	finalFour := strings.Index(out, "Final Four")

	assert.True(t, east < south && south < west && west < midwest && midwest < finalFour,
		"regions out of order: %d %d %d %d %d", east, south, west, midwest, finalFour)
}

func TestText_ChampionIsNotComputed(t *testing.T) {
	r := brackettest.Sample()
	// The champion deliberately disagrees with the previous round.
	r.TopLeft.RegionalChamp = "Z"

	assert.Contains(t, bracket.Text(r), "Regional Champ: Z\n")
}

func TestText_Nil(t *testing.T) {
	assert.Empty(t, bracket.Text(nil))
	assert.Empty(t, bracket.Markdown(nil))
}

func TestMarkdown(t *testing.T) {
	out := bracket.Markdown(brackettest.Sample())

	assert.Contains(t, out, "## East Region")
	assert.Contains(t, out, "| Round of 32 | A, B |")
	assert.Contains(t, out, "| **Regional Champ** | **A** |")
	assert.Contains(t, out, "- Left: East (1)")
	assert.Contains(t, out, "## National Champion\n\n**East (1)**")
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	r := brackettest.Sample()
	r.TopLeft.RoundOf32 = []bracket.Team{"A|B"}

	assert.Contains(t, bracket.Markdown(r), `| Round of 32 | A\|B |`)
}
