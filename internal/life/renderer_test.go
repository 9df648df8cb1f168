package life

import (
	"testing"

	"lifecal/internal/grid"
	"lifecal/internal/surface"
)

func TestRenderPaintsExactlyTheAliveSet(t *testing.T) {
	cal := testCalendar()
	// Stale state that must be wiped by the render pass.
	seed(cal, "2024-03-03", "2024-03-29")

	e := NewEngine(cal)
	r := NewRenderer(cal, e.Index(), 7)

	next := []grid.Key{"2024-03-10", "2024-03-11", "2024-03-12"}
	r.Render(next)

	nextSet := asSet(next)
	for _, k := range cal.Keys() {
		c, _ := cal.Color(k)
		if nextSet[k] {
			if !surface.IsAlive(cal, k) {
				t.Fatalf("cell %q should be alive", k)
			}
			if !paletteColor(c) {
				t.Fatalf("cell %q painted %q, not a palette color", k, c)
			}
		} else if c != surface.Off {
			t.Fatalf("cell %q should be off, got %q", k, c)
		}
	}
}

func TestRenderIdempotentOnAliveSet(t *testing.T) {
	cal := testCalendar()
	e := NewEngine(cal)
	r := NewRenderer(cal, e.Index(), 7)

	next := []grid.Key{"2024-03-10", "2024-03-20"}
	r.Render(next)
	first := aliveSet(cal)
	r.Render(next)
	second := aliveSet(cal)

	if len(first) != len(second) {
		t.Fatalf("alive set changed across re-render: %v vs %v", first, second)
	}
	for k := range first {
		if !second[k] {
			t.Fatalf("cell %q lost across re-render", k)
		}
	}
}

func paletteColor(c surface.Color) bool {
	for _, p := range surface.Palette {
		if c == p {
			return true
		}
	}
	return false
}

func aliveSet(cal *surface.Calendar) map[grid.Key]bool {
	set := make(map[grid.Key]bool)
	for _, k := range cal.Keys() {
		if surface.IsAlive(cal, k) {
			set[k] = true
		}
	}
	return set
}
