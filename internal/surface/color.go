package surface

import "image/color"

// Color is a cell's visual value as a #rrggbb hex triple.
type Color string

// Off is the canonical dead-cell color. Any other value reads as alive.
const Off Color = "#ebedf0"

// Palette is the alive color ramp. Entries are interchangeable; the
// renderer picks one at random per cell for cosmetic variety.
var Palette = []Color{"#9be9a8", "#40c463", "#30a14e", "#216e39"}

// RGBA decodes the hex triple into a pixel color. The second result is
// false when the value is not a well-formed #rrggbb string.
func (c Color) RGBA() (color.RGBA, bool) {
	if len(c) != 7 || c[0] != '#' {
		return color.RGBA{}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(c[1+i*2])
		lo, ok2 := hexNibble(c[2+i*2])
		if !ok1 || !ok2 {
			return color.RGBA{}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
