// Package symmetry implements the group of actions that can be distributed
// over a rule tree: the geometric translation/rotation group of package
// board, wrapped to satisfy Symmetry, plus the custom piece-relabeling
// actions the bundled games need (colour-flip, side-swap, direction
// rotation). See the design note on "Pluggable custom actions" for the
// shape this interface follows: two maps, one over points and one over
// piece characters, used together inside the standard rule-distribution
// recursion (package rule's Distribute).
package symmetry

import "github.com/lgbarn/boardalgebra/internal/board"

// Symmetry is anything that can be distributed over a rule: a map on
// board-square coordinates and a map on piece characters. Geometric Move
// implements it via Geometric with an identity piece map; custom actions
// override MapPiece (and may also override MapPoint, as chess colour-flip
// does by composing a 180-degree turn with its piece swap).
type Symmetry interface {
	// MapPoint transforms a board-square coordinate (the "square" action,
	// anchored at the square's corner — see board.Move.ActOnSquare).
	MapPoint(c board.Coord) board.Coord
	// MapPiece transforms a single piece character. The free variable '%'
	// and the empty marker '.' are always fixed points; implementations
	// need not special-case them as callers never route them through
	// MapPiece (see ApplyToBoard).
	MapPiece(c byte) byte
}

// ApplyToBoard applies s to every entry of b: coordinates are remapped by
// MapPoint, and literal single-character contents are relabeled by
// MapPiece. Multi-character classes and negated classes do not occur on
// concrete boards and are passed through unchanged if they do.
func ApplyToBoard(s Symmetry, b board.Board) board.Board {
	out := make(board.Board, len(b))
	for c, spec := range b {
		out[s.MapPoint(c)] = mapSpec(s, spec)
	}
	return out
}

func mapSpec(s Symmetry, spec board.SquareSpec) board.SquareSpec {
	ch, ok := spec.LiteralByte()
	if !ok || ch == '%' || ch == '.' {
		return spec
	}
	return board.Literal(s.MapPiece(ch))
}

// Geometric wraps a pure board.Move (translation/rotation) as a Symmetry
// with an identity piece map.
type Geometric struct {
	Move board.Move
}

func (g Geometric) MapPoint(c board.Coord) board.Coord { return g.Move.ActOnSquare(c) }
func (g Geometric) MapPiece(c byte) byte               { return c }

// Identity is the Geometric wrapping board.Identity().
func Identity() Geometric { return Geometric{Move: board.Identity()} }
