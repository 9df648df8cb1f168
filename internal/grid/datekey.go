// Package grid addresses calendar-laid-out cells by date rather than by
// row/column coordinates. A cell's eight visual neighbors in a
// row-per-weekday, column-per-week layout correspond to fixed day offsets
// from its date, so adjacency is pure date arithmetic.
package grid

import "time"

// keyLayout is the canonical date key format.
const keyLayout = "2006-01-02"

// Key identifies one cell by its calendar date, formatted YYYY-MM-DD.
type Key string

// neighborDayOffsets are the day deltas to the eight adjacent cells:
// up/down (±1 day), left/right (±1 week) and the four diagonals (±1 week
// ±1 day). Immutable.
var neighborDayOffsets = [8]int{-8, -7, -6, -1, 1, 6, 7, 8}

// ParseKey parses a canonical date key into a UTC instant.
func ParseKey(k Key) (time.Time, error) {
	return time.ParseInLocation(keyLayout, string(k), time.UTC)
}

// KeyOf formats an instant as a date key.
func KeyOf(t time.Time) Key {
	return Key(t.UTC().Format(keyLayout))
}

// Valid reports whether k is a well-formed date key.
func (k Key) Valid() bool {
	_, err := ParseKey(k)
	return err == nil
}

// NeighborKeys returns the eight candidate neighbor keys of k in offset
// order. A malformed key yields nil.
func NeighborKeys(k Key) []Key {
	t, err := ParseKey(k)
	if err != nil {
		return nil
	}
	out := make([]Key, 0, len(neighborDayOffsets))
	for _, d := range neighborDayOffsets {
		out = append(out, KeyOf(t.AddDate(0, 0, d)))
	}
	return out
}
