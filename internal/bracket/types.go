package bracket

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RegionKey identifies one of the four fixed bracket quadrants.
type RegionKey string

const (
	TopLeft     RegionKey = "top_left"
	BottomLeft  RegionKey = "bottom_left"
	TopRight    RegionKey = "top_right"
	BottomRight RegionKey = "bottom_right"
)

// RegionOrder is the order regions are always displayed in.
var RegionOrder = []RegionKey{TopLeft, BottomLeft, TopRight, BottomRight}

// Team is a single bracket entry as sent by the service.
type Team string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (t *Team) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*t = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Team(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("team entry must be a string or number, got %s", raw)
	}
	*t = Team(n.String())
	return nil
}

// String returns the team as displayed.
func (t Team) String() string { return string(t) }

// Region is one quadrant of the bracket with its three round lists and champion.
type Region struct {
	Name          string `json:"region"`
	RoundOf32     []Team `json:"round_of_32"`
	Sweet16       []Team `json:"sweet_16"`
	Elite8        []Team `json:"elite_8"`
	RegionalChamp Team   `json:"regional_champ"`
}

// Heading is the region title, e.g. "East Region".
func (r Region) Heading() string {
	return r.Name + " Region"
}

// Seed names a team by its region and seed number.
type Seed struct {
	Region string `json:"region"`
	Seed   int    `json:"seed"`
}

// String formats the seed as "East (1)".
func (s Seed) String() string {
	return s.Region + " (" + strconv.Itoa(s.Seed) + ")"
}

// FinalFour holds the two cross-region finalists.
type FinalFour struct {
	Left  Seed `json:"left"`
	Right Seed `json:"right"`
}

// Result is a complete bracket as returned by one generation request.
type Result struct {
	TopLeft          Region    `json:"top_left"`
	BottomLeft       Region    `json:"bottom_left"`
	TopRight         Region    `json:"top_right"`
	BottomRight      Region    `json:"bottom_right"`
	FinalFour        FinalFour `json:"final_four"`
	NationalChampion Seed      `json:"national_champion"`
}

// Region returns the region stored under key. Unknown keys yield an empty Region.
func (r *Result) Region(key RegionKey) Region {
	if r == nil {
		return Region{}
	}
	switch key {
	case TopLeft:
		return r.TopLeft
	case BottomLeft:
		return r.BottomLeft
	case TopRight:
		return r.TopRight
	case BottomRight:
		return r.BottomRight
	default:
		return Region{}
	}
}

// Regions returns the four regions in display order.
func (r *Result) Regions() []Region {
	regions := make([]Region, 0, len(RegionOrder))
	for _, key := range RegionOrder {
		regions = append(regions, r.Region(key))
	}
	return regions
}

// Decode reads a bracket document. Missing fields are left empty; only
// malformed JSON is an error.
func Decode(r io.Reader) (*Result, error) {
	var result Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode bracket: %w", err)
	}
	return &result, nil
}
