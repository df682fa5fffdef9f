package games

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/rule"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// othelloBoard builds the standard 8x8 start: an empty board with the
// four centre discs placed. The board records no side to move.
func othelloBoard() board.Board {
	b := board.New()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			b.Set(board.Coord{X: x, Y: y}, board.Literal('.'))
		}
	}
	b.Set(board.Coord{X: 3, Y: 3}, board.Literal('W'))
	b.Set(board.Coord{X: 4, Y: 3}, board.Literal('B'))
	b.Set(board.Coord{X: 3, Y: 4}, board.Literal('B'))
	b.Set(board.Coord{X: 4, Y: 4}, board.Literal('W'))
	return b
}

// othelloCaptureRight is White's bracketing capture along the +x axis,
// flipping exactly one opposing disc: an empty square, one Black disc,
// and a White disc in a row become three White discs. Distributing this
// single pattern over the four quarter rotations covers all four
// orthogonal capture directions; diagonal bracketing and runs of more
// than one flipped disc are the kind of bundled-game depth the engine
// leaves to the rule libraries it hosts, not to this catalog.
func othelloCaptureRight() rule.Rule {
	return rule.NewFindReplace(
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).
			Set(board.Coord{X: 1, Y: 0}, board.Literal('B')).
			Set(board.Coord{X: 2, Y: 0}, board.Literal('W')),
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal('W')).
			Set(board.Coord{X: 1, Y: 0}, board.Literal('W')).
			Set(board.Coord{X: 2, Y: 0}, board.Literal('W')),
	)
}

func othelloCaptureAllDirections(base rule.Rule) rule.Rule {
	return rule.NewOneOf(
		base,
		base.Distribute(symmetry.Geometric{Move: board.Rotate(1)}),
		base.Distribute(symmetry.Geometric{Move: board.Rotate(2)}),
		base.Distribute(symmetry.Geometric{Move: board.Rotate(3)}),
	)
}

func othelloRule() rule.Rule {
	white := othelloCaptureAllDirections(othelloCaptureRight())
	black := white.Distribute(symmetry.SideSwap{A: 'W', B: 'B'})
	return rule.NewOneOf(white, black)
}

func init() {
	register(Game{
		Name:    "othello",
		Rule:    othelloRule(),
		Initial: othelloBoard(),
	})
}
