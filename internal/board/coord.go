// Package board implements the sparse board model: coordinates, square
// specs, the board map itself, its canonical text grammar, and the
// translation/rotation group that acts on all three.
package board

import "fmt"

// Coord is a point on the board. +X is right, +Y is up.
type Coord struct {
	X, Y int
}

// Add returns the coordinate translated by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// byCoord sorts coordinates in row-major order (y then x), used anywhere a
// deterministic iteration order is required (fingerprinting, printing).
type byCoord []Coord

func (s byCoord) Len() int      { return len(s) }
func (s byCoord) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byCoord) Less(i, j int) bool {
	if s[i].Y != s[j].Y {
		return s[i].Y < s[j].Y
	}
	return s[i].X < s[j].X
}
