package bracket_test

import (
	"strings"
	"testing"

	"bracketctl/internal/bracket"
	"bracketctl/internal/bracket/brackettest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_StringTeams(t *testing.T) {
	r, err := bracket.Decode(strings.NewReader(brackettest.SampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "East", r.TopLeft.Name)
	assert.Equal(t, []bracket.Team{"A", "B"}, r.TopLeft.RoundOf32)
	assert.Equal(t, bracket.Team("H"), r.BottomRight.RegionalChamp)
	assert.Equal(t, bracket.Seed{Region: "West", Seed: 2}, r.FinalFour.Right)
	assert.Equal(t, bracket.Seed{Region: "East", Seed: 1}, r.NationalChampion)
}

func TestDecode_NumericTeams(t *testing.T) {
	r, err := bracket.Decode(strings.NewReader(brackettest.SeedsJSON))
	require.NoError(t, err)

	assert.Equal(t, "1, 8, 5, 4, 6, 3, 7, 2", bracket.JoinTeams(r.TopLeft.RoundOf32))
	assert.Equal(t, bracket.Team("15"), r.TopRight.RegionalChamp)
}

func TestDecode_MissingFieldsStayEmpty(t *testing.T) {
	r, err := bracket.Decode(strings.NewReader(`{"top_left": {"region": "East", "regional_champ": null}}`))
	require.NoError(t, err)

	assert.Equal(t, "East", r.TopLeft.Name)
	assert.Empty(t, r.TopLeft.RoundOf32)
	assert.Empty(t, r.TopLeft.RegionalChamp)
	assert.Empty(t, r.BottomRight.Name)
	assert.Equal(t, bracket.Seed{}, r.NationalChampion)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "<html>"},
		{name: "truncated", doc: `{"top_left": {`},
		{name: "bool team", doc: `{"top_left": {"round_of_32": [true]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bracket.Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestResult_RegionsInFixedOrder(t *testing.T) {
	r := brackettest.Sample()

	var names []string
	for _, region := range r.Regions() {
		names = append(names, region.Name)
	}
	assert.Equal(t, []string{"East", "South", "West", "Midwest"}, names)
	assert.Equal(t, "West", r.Region(bracket.TopRight).Name)
	assert.Empty(t, r.Region("center").Name)
}

func TestResult_NilRegion(t *testing.T) {
	var r *bracket.Result
	assert.Equal(t, bracket.Region{}, r.Region(bracket.TopLeft))
	assert.Len(t, r.Regions(), 4)
}

func TestSeed_String(t *testing.T) {
	assert.Equal(t, "East (1)", bracket.Seed{Region: "East", Seed: 1}.String())
	assert.Equal(t, "Bottom Right (16)", bracket.Seed{Region: "Bottom Right", Seed: 16}.String())
}
