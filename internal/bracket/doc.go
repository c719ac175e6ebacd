// Package bracket defines the tournament bracket document returned by the
// remote generation service and the text forms it is displayed in.
//
// The package never builds or simulates brackets. It decodes whatever the
// service sends, keeps the order of every round exactly as received, and
// renders the champions named by the response rather than deriving them.
//
// # Document shape
//
//	{
//	  "top_left":     {"region": "East", "round_of_32": [...], "sweet_16": [...],
//	                   "elite_8": [...], "regional_champ": "..."},
//	  "bottom_left":  {...},
//	  "top_right":    {...},
//	  "bottom_right": {...},
//	  "final_four":   {"left": {"region": "East", "seed": 1},
//	                   "right": {"region": "West", "seed": 2}},
//	  "national_champion": {"region": "East", "seed": 1}
//	}
//
// Team entries may be strings or bare seed numbers; both decode to Team.
package bracket
