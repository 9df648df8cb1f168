// Package glapp adapts the simulation to an ebiten pixel viewer: one pixel
// per calendar cell, weekday rows by week columns, scaled up at draw time.
package glapp

import (
	"image/color"

	"lifecal/internal/grid"
	"lifecal/internal/surface"
)

// GridRows is the number of weekday rows in the layout.
const GridRows = 7

// background fills positions before the first or after the last date.
var background = color.RGBA{R: 0x16, G: 0x1b, B: 0x22, A: 0xff}

// Layout maps a calendar's linear cell order onto the weekday-row /
// week-column geometry.
type Layout struct {
	// Lead counts empty grid positions before the first date in its
	// starting week.
	Lead int
	// Weeks is the number of columns.
	Weeks int
}

// NewLayout computes the geometry for n cells starting at first. The
// second result is false when the first key is malformed.
func NewLayout(first grid.Key, n int) (Layout, bool) {
	t, err := grid.ParseKey(first)
	if err != nil {
		return Layout{}, false
	}
	lead := int(t.Weekday())
	return Layout{
		Lead:  lead,
		Weeks: (lead + n + GridRows - 1) / GridRows,
	}, true
}

// Pos returns the row and column of the i-th cell.
func (l Layout) Pos(i int) (row, col int) {
	p := l.Lead + i
	return p % GridRows, p / GridRows
}

// FillRGBA converts cell colors into RGBA pixels in buf, row-major over
// GridRows x l.Weeks. Positions holding no date keep the background color.
// The buffer must be GridRows*l.Weeks*4 bytes.
func FillRGBA(buf []byte, keys []grid.Key, colorAt func(grid.Key) surface.Color, l Layout) {
	for i := 0; i < GridRows*l.Weeks; i++ {
		base := i * 4
		buf[base+0] = background.R
		buf[base+1] = background.G
		buf[base+2] = background.B
		buf[base+3] = background.A
	}
	for i, k := range keys {
		col, ok := colorAt(k).RGBA()
		if !ok {
			continue
		}
		row, week := l.Pos(i)
		base := (row*l.Weeks + week) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
