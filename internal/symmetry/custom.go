package symmetry

import "github.com/lgbarn/boardalgebra/internal/board"

// ColourFlip is chess's custom symmetry: a 180-degree turn (so that the
// rule reads as if played from the other side) composed with swapping
// each piece's case, upper-case pieces denoting one colour and lower-case
// the other.
type ColourFlip struct{}

func (ColourFlip) MapPoint(c board.Coord) board.Coord {
	return board.Rotate(2).ActOnSquare(c)
}

func (ColourFlip) MapPiece(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	default:
		return c
	}
}

// SideSwap is tic-tac-toe's and Othello's custom symmetry: geometry is
// unchanged, but the two marks trade places, letting the same rule tree
// serve either side's turn.
type SideSwap struct {
	A, B byte
}

func (SideSwap) MapPoint(c board.Coord) board.Coord { return c }

func (s SideSwap) MapPiece(c byte) byte {
	switch c {
	case s.A:
		return s.B
	case s.B:
		return s.A
	default:
		return c
	}
}

// DirectionRotate is snake's custom symmetry: a geometric rotation
// composed with cyclically relabeling an ordered alphabet of
// direction-arrow pieces by the same number of quarter turns, so that a
// rule written for "moving up" also governs the snake while it is moving
// right, down, or left.
type DirectionRotate struct {
	Quarters int    // 0..3, the number of quarter turns
	Arrows   string // ordered alphabet, one character per compass quarter
}

func (d DirectionRotate) MapPoint(c board.Coord) board.Coord {
	return board.Rotate(d.Quarters).ActOnSquare(c)
}

func (d DirectionRotate) MapPiece(c byte) byte {
	i := indexByte(d.Arrows, c)
	if i < 0 {
		return c
	}
	n := len(d.Arrows)
	return d.Arrows[((i+d.Quarters)%n+n)%n]
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
