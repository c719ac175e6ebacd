// Package brackettest provides bracket documents for tests.
package brackettest

import (
	"strings"

	"bracketctl/internal/bracket"
)

// SampleJSON is a small bracket with string team names.
const SampleJSON = `{
  "top_left": {"region": "East", "round_of_32": ["A", "B"], "sweet_16": ["A"], "elite_8": ["A"], "regional_champ": "A"},
  "bottom_left": {"region": "South", "round_of_32": ["C", "D"], "sweet_16": ["D"], "elite_8": ["D"], "regional_champ": "D"},
  "top_right": {"region": "West", "round_of_32": ["E", "F"], "sweet_16": ["E"], "elite_8": ["E"], "regional_champ": "E"},
  "bottom_right": {"region": "Midwest", "round_of_32": ["G", "H"], "sweet_16": ["H"], "elite_8": ["H"], "regional_champ": "H"},
  "final_four": {"left": {"region": "East", "seed": 1}, "right": {"region": "West", "seed": 2}},
  "national_champion": {"region": "East", "seed": 1}
}`

// SeedsJSON mirrors what the generation service emits: seed numbers as teams.
const SeedsJSON = `{
  "top_left": {"region": "Top Left", "round_of_32": [1, 8, 5, 4, 6, 3, 7, 2], "sweet_16": [1, 4, 3, 2], "elite_8": [1, 2], "regional_champ": 1},
  "bottom_left": {"region": "Bottom Left", "round_of_32": [1, 9, 12, 4, 11, 3, 10, 2], "sweet_16": [1, 12, 3, 2], "elite_8": [12, 3], "regional_champ": 3},
  "top_right": {"region": "Top Right", "round_of_32": [16, 8, 5, 13, 6, 14, 7, 15], "sweet_16": [8, 5, 6, 15], "elite_8": [5, 15], "regional_champ": 15},
  "bottom_right": {"region": "Bottom Right", "round_of_32": [1, 8, 5, 4, 6, 3, 7, 2], "sweet_16": [1, 5, 3, 2], "elite_8": [1, 2], "regional_champ": 2},
  "final_four": {"left": {"region": "Top Left", "seed": 1}, "right": {"region": "Bottom Right", "seed": 2}},
  "national_champion": {"region": "Bottom Right", "seed": 2}
}`

// Sample decodes SampleJSON.
func Sample() *bracket.Result {
	return mustDecode(SampleJSON)
}

// Seeds decodes SeedsJSON.
func Seeds() *bracket.Result {
	return mustDecode(SeedsJSON)
}

func mustDecode(doc string) *bracket.Result {
	r, err := bracket.Decode(strings.NewReader(doc))
	if err != nil {
		panic(err)
	}
	return r
}
