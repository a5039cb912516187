package rectpack

import "sort"

// Pool tracks the pieces left to place, grouped by size. A key never maps to
// an empty slice: taking the last piece of a size removes the key.
type Pool map[Size][]Color

func (p Pool) Empty() bool { return len(p) == 0 }

func (p Pool) Count() (n int) {
	for _, colors := range p {
		n += len(colors)
	}
	return
}

// Sizes returns the distinct sizes with pieces remaining, in ascending
// [Size.Less] order, so the search visits groups deterministically.
func (p Pool) Sizes() []Size {
	sizes := make([]Size, 0, len(p))
	for s := range p {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Less(sizes[j]) })
	return sizes
}

// TakeOne removes and returns the earliest remaining piece of the given
// size, keeping piece identity stable across the search.
// Panics [AssertionError] when no piece of that size is left: callers must
// only ask for sizes reported by [Pool.Sizes].
func (p Pool) TakeOne(size Size) Piece {
	colors, ok := p[size]
	if !ok {
		panic(AssertionError{"no piece of size " + size.String() + " in pool"})
	}
	piece := Piece{Size: size, Color: colors[0]}
	if len(colors) == 1 {
		delete(p, size)
	} else {
		p[size] = colors[1:]
	}
	return piece
}

// Clone deep-copies the pool; clones never share color slices with the
// original.
func (p Pool) Clone() Pool {
	clone := make(Pool, len(p))
	for s, colors := range p {
		clone[s] = append([]Color(nil), colors...)
	}
	return clone
}
