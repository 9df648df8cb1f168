// Package life runs Conway's Game of Life (B3/S23, fixed) over a
// date-addressed host surface. The engine reads the whole current
// generation before anything is written back, so a pass can never observe
// a half-updated board.
package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifecal/internal/grid"
	"lifecal/internal/surface"
)

// Engine computes next generations for one surface. Neighbor positions are
// resolved once at construction since grid membership never changes.
type Engine struct {
	srf       surface.Surface
	idx       *grid.Index
	neighbors [][]int
	workers   int
}

// NewEngine indexes the surface and precomputes every cell's in-grid
// neighbor set.
func NewEngine(srf surface.Surface) *Engine {
	idx := grid.NewIndex(srf.Keys())
	nb := make([][]int, idx.Len())
	for i, k := range idx.Keys() {
		nb[i] = idx.Neighbors(k)
	}
	return &Engine{srf: srf, idx: idx, neighbors: nb, workers: 1}
}

// Index exposes the engine's grid index.
func (e *Engine) Index() *grid.Index { return e.idx }

// Surface exposes the host surface the engine runs over.
func (e *Engine) Surface() surface.Surface { return e.srf }

// SetWorkers shards the evaluation pass across n goroutines. Values below 1
// select one shard per CPU. The pass only reads the immutable snapshot, so
// sharding cannot reorder or corrupt results.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	e.workers = n
}

// survives applies the B3/S23 transition to one cell.
func survives(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextGeneration returns the keys alive after one step, in grid order. The
// surface is not mutated; pair with Renderer.Render to commit the result.
func (e *Engine) NextGeneration() []grid.Key {
	keys := e.idx.Keys()
	alive := make([]bool, len(keys))
	for i, k := range keys {
		alive[i] = surface.IsAlive(e.srf, k)
	}

	if e.workers > 1 && len(keys) > 0 {
		return e.nextSharded(alive)
	}

	var next []grid.Key
	for i, k := range keys {
		if survives(alive[i], e.countAlive(alive, i)) {
			next = append(next, k)
		}
	}
	return next
}

func (e *Engine) countAlive(alive []bool, i int) int {
	n := 0
	for _, p := range e.neighbors[i] {
		if alive[p] {
			n++
		}
	}
	return n
}

func (e *Engine) nextSharded(alive []bool) []grid.Key {
	var (
		eg       errgroup.Group
		keys     = e.idx.Keys()
		perShard = (len(keys) + e.workers - 1) / e.workers
		results  = make([][]grid.Key, e.workers)
	)

	for s := 0; s < e.workers; s++ {
		start := s * perShard
		if start >= len(keys) {
			break
		}
		end := min(start+perShard, len(keys))
		s := s
		eg.Go(func() error {
			var out []grid.Key
			for i := start; i < end; i++ {
				if survives(alive[i], e.countAlive(alive, i)) {
					out = append(out, keys[i])
				}
			}
			results[s] = out
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()

	var next []grid.Key
	for _, r := range results {
		next = append(next, r...)
	}
	return next
}
