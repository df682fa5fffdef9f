package board

import "sort"

// Board is a finite mapping from Coord to SquareSpec. Insertion order is
// irrelevant; no key maps to an empty-string spec. Two boards are equal
// iff their entry sets are equal.
type Board map[Coord]SquareSpec

// New returns an empty board.
func New() Board {
	return make(Board)
}

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Get returns the spec at c and whether an entry exists.
func (b Board) Get(c Coord) (SquareSpec, bool) {
	s, ok := b[c]
	return s, ok
}

// Set installs spec at c, returning the board for chaining.
func (b Board) Set(c Coord, s SquareSpec) Board {
	b[c] = s
	return b
}

// Delete removes the entry at c, if any.
func (b Board) Delete(c Coord) {
	delete(b, c)
}

// Equal reports whether a and b have the same entry set.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for k, v := range b {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Coords returns the board's coordinates in deterministic row-major order.
func (b Board) Coords() []Coord {
	out := make([]Coord, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	sort.Sort(byCoord(out))
	return out
}

// Bounds returns the bounding box of the board's entries. ok is false for
// an empty board, in which case the box is undefined.
func (b Board) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	first := true
	for c := range b {
		if first {
			minX, maxX = c.X, c.X
			minY, maxY = c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, minY, maxX, maxY, !first
}

// Diff returns the set of coordinates at which a and b disagree (one of
// the two boards holds a different spec, or one holds an entry the other
// lacks). Absence is treated as unequal to any present value.
func Diff(a, b Board) map[Coord]bool {
	out := make(map[Coord]bool)
	for k, v := range a {
		if ov, ok := b[k]; !ok || !v.Equal(ov) {
			out[k] = true
		}
	}
	for k, v := range b {
		if av, ok := a[k]; !ok || !v.Equal(av) {
			out[k] = true
		}
	}
	return out
}
