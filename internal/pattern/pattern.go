// Package pattern provides seed patterns for the calendar grid, expressed
// as day/week displacements from an anchor date so the same shape lands
// correctly anywhere on the board.
package pattern

import (
	"sort"
	"time"

	"lifecal/internal/grid"
)

// Offset displaces a cell from the pattern anchor: weeks move across
// columns, days move down rows.
type Offset struct {
	Days  int `json:"days"`
	Weeks int `json:"weeks"`
}

// Pattern is a named set of offsets.
type Pattern struct {
	Name    string   `json:"name"`
	Offsets []Offset `json:"offsets"`
}

var presets = map[string]Pattern{
	"block": {
		Name: "block",
		Offsets: []Offset{
			{0, 0}, {1, 0}, {0, 1}, {1, 1},
		},
	},
	"blinker": {
		Name: "blinker",
		Offsets: []Offset{
			{0, -1}, {0, 0}, {0, 1},
		},
	},
	"glider": {
		Name: "glider",
		Offsets: []Offset{
			{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
		},
	},
	"beacon": {
		Name: "beacon",
		Offsets: []Offset{
			{0, 0}, {0, 1}, {1, 0}, {1, 1},
			{2, 2}, {2, 3}, {3, 2}, {3, 3},
		},
	},
}

// Preset returns a built-in pattern by name.
func Preset(name string) (Pattern, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists the built-in pattern names, sorted.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Keys resolves the pattern against an anchor date. Offsets that land
// outside the grid are the controller's problem, not ours: every key is
// returned.
func (p Pattern) Keys(anchor time.Time) []grid.Key {
	out := make([]grid.Key, 0, len(p.Offsets))
	for _, o := range p.Offsets {
		out = append(out, grid.KeyOf(anchor.AddDate(0, 0, o.Days+o.Weeks*7)))
	}
	return out
}
