// Package surface defines the host grid boundary: the cells the automaton
// runs over, addressed by date key, with liveness derived from each cell's
// rendered color rather than a separate boolean store. The host page's
// pre-existing visual state therefore seeds the first generation for free.
package surface

import "lifecal/internal/grid"

// Surface is the sole dependency on the host grid. Membership is fixed for
// the life of the surface; only cell colors change.
type Surface interface {
	// Keys enumerates every cell in the host's natural order. The order
	// must be stable across calls.
	Keys() []grid.Key
	// Color returns a cell's current color. The second result is false
	// when the key is outside the grid.
	Color(k grid.Key) (Color, bool)
	// SetColor writes a cell's color, reporting whether the key resolved.
	SetColor(k grid.Key, c Color) bool
}

// IsAlive reports whether a cell reads as alive: present and colored
// anything other than Off. Absent cells are dead, never an error.
func IsAlive(s Surface, k grid.Key) bool {
	c, ok := s.Color(k)
	return ok && c != Off
}

// SetAlive paints a cell with an alive color. A choice equal to Off would
// silently read back as dead, so it is substituted with the first palette
// entry.
func SetAlive(s Surface, k grid.Key, c Color) {
	if c == Off {
		c = Palette[0]
	}
	s.SetColor(k, c)
}

// SetDead resets a cell to the off color.
func SetDead(s Surface, k grid.Key) {
	s.SetColor(k, Off)
}
