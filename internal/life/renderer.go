package life

import (
	"lifecal/internal/grid"
	"lifecal/internal/surface"
	"lifecal/pkg/rng"
)

// Renderer commits a computed generation to the surface: every cell is
// reset to dead, then the alive set is painted. The palette entry chosen
// per cell is random and carries no meaning beyond visual variety.
type Renderer struct {
	srf     surface.Surface
	idx     *grid.Index
	palette []surface.Color
	rng     *rng.RNG
}

// NewRenderer builds a renderer over the engine's index using the package
// palette and a deterministic color RNG.
func NewRenderer(srf surface.Surface, idx *grid.Index, seed int64) *Renderer {
	return &Renderer{
		srf:     srf,
		idx:     idx,
		palette: surface.Palette,
		rng:     rng.New(seed),
	}
}

// PickColor returns a random palette entry.
func (r *Renderer) PickColor() surface.Color {
	return r.palette[r.rng.IntN(len(r.palette))]
}

// Render paints the next generation. Rendering the same set twice leaves
// the same alive/dead state, modulo the cosmetic color choice.
func (r *Renderer) Render(next []grid.Key) {
	for _, k := range r.idx.Keys() {
		surface.SetDead(r.srf, k)
	}
	for _, k := range next {
		surface.SetAlive(r.srf, k, r.PickColor())
	}
}
