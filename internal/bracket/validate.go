package bracket

import "fmt"

// Expected entries per round in a single-elimination region of sixteen seeds.
const (
	expectedRoundOf32 = 8
	expectedSweet16   = 4
	expectedElite8    = 2
)

// Validate reports shape problems in a bracket. The findings are diagnostics
// only; a bracket with findings is still displayed as received.
func Validate(r *Result) []string {
	if r == nil {
		return []string{"bracket is empty"}
	}

	var findings []string
	for _, key := range RegionOrder {
		region := r.Region(key)
		if region.Name == "" {
			findings = append(findings, fmt.Sprintf("%s: missing region name", key))
		}
		findings = append(findings, checkRound(key, LabelRoundOf32, len(region.RoundOf32), expectedRoundOf32)...)
		findings = append(findings, checkRound(key, LabelSweet16, len(region.Sweet16), expectedSweet16)...)
		findings = append(findings, checkRound(key, LabelElite8, len(region.Elite8), expectedElite8)...)
		if region.RegionalChamp != "" && len(region.Elite8) > 0 && !contains(region.Elite8, region.RegionalChamp) {
			findings = append(findings, fmt.Sprintf("%s: regional champ %q not in %s", key, region.RegionalChamp, LabelElite8))
		}
	}
	if r.NationalChampion != r.FinalFour.Left && r.NationalChampion != r.FinalFour.Right {
		findings = append(findings, fmt.Sprintf("national champion %s is not a Final Four side", r.NationalChampion))
	}
	return findings
}

func checkRound(key RegionKey, label string, got, want int) []string {
	if got == want {
		return nil
	}
	return []string{fmt.Sprintf("%s: %s has %d entries, expected %d", key, label, got, want)}
}

func contains(teams []Team, t Team) bool {
	for _, team := range teams {
		if team == t {
			return true
		}
	}
	return false
}
