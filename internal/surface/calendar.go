package surface

import (
	"sync"
	"time"

	"lifecal/internal/grid"
)

// Compile-time assertion that Calendar satisfies the host boundary.
var _ Surface = (*Calendar)(nil)

// Calendar is an in-memory Surface covering an inclusive date range, one
// cell per day. It is the reference host used by the bundled front ends and
// by tests. Reads and writes may come from different goroutines when a
// ticker drives the simulation, hence the lock.
type Calendar struct {
	mu    sync.RWMutex
	keys  []grid.Key
	color map[grid.Key]Color
}

// NewCalendar builds a calendar spanning from..to inclusive, every cell
// starting dead. A reversed range yields an empty calendar.
func NewCalendar(from, to time.Time) *Calendar {
	c := &Calendar{color: make(map[grid.Key]Color)}
	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		k := grid.KeyOf(d)
		c.keys = append(c.keys, k)
		c.color[k] = Off
	}
	return c
}

// Keys returns every cell key in date order.
func (c *Calendar) Keys() []grid.Key {
	return c.keys
}

// Color returns a cell's current color.
func (c *Calendar) Color(k grid.Key) (Color, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	col, ok := c.color[k]
	return col, ok
}

// SetColor writes a cell's color. Writes to keys outside the range are
// dropped and reported false.
func (c *Calendar) SetColor(k grid.Key, col Color) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.color[k]; !ok {
		return false
	}
	c.color[k] = col
	return true
}
