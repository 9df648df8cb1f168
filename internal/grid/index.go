package grid

// Index resolves date keys to grid membership and enumerates cells in a
// stable order. Membership is fixed at construction; the host surface never
// grows or shrinks mid-run.
type Index struct {
	keys []Key
	pos  map[Key]int
}

// NewIndex builds an index over the host's cells in their natural order.
// Duplicate keys keep their first position.
func NewIndex(keys []Key) *Index {
	ix := &Index{
		keys: make([]Key, 0, len(keys)),
		pos:  make(map[Key]int, len(keys)),
	}
	for _, k := range keys {
		if _, ok := ix.pos[k]; ok {
			continue
		}
		ix.pos[k] = len(ix.keys)
		ix.keys = append(ix.keys, k)
	}
	return ix
}

// Len returns the number of cells in the grid.
func (ix *Index) Len() int { return len(ix.keys) }

// Keys returns every cell key in stable order. The returned slice is shared;
// callers must not mutate it.
func (ix *Index) Keys() []Key { return ix.keys }

// Lookup resolves a key to its position in the grid. The second result is
// false when the key falls outside the rendered range.
func (ix *Index) Lookup(k Key) (int, bool) {
	p, ok := ix.pos[k]
	return p, ok
}

// Neighbors returns the positions of the cells adjacent to k that exist in
// the grid. Offsets landing outside the range are omitted, so edge cells
// simply have fewer than eight neighbors.
func (ix *Index) Neighbors(k Key) []int {
	var out []int
	for _, nk := range NeighborKeys(k) {
		if p, ok := ix.pos[nk]; ok {
			out = append(out, p)
		}
	}
	return out
}
