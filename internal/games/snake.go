package games

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/rule"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// snakeArrows is the ordered direction-arrow alphabet DirectionRotate
// cycles through, one character per compass quarter, in the same
// counter-clockwise sense as board.Rotate.
const snakeArrows = ">^<v"

// snakeBoard builds a small arena with a two-segment snake (head and one
// body segment) facing up, and explicit '.' markers at every square the
// move rule needs to see as empty.
func snakeBoard() board.Board {
	b := board.New()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b.Set(board.Coord{X: x, Y: y}, board.Literal('.'))
		}
	}
	b.Set(board.Coord{X: 2, Y: 1}, board.Literal('o'))
	b.Set(board.Coord{X: 2, Y: 2}, board.Literal('^'))
	return b
}

// snakeAdvanceUp slides a head facing up into the empty square ahead,
// leaving a body segment behind it. It says nothing about eating or
// growing; the full snake rule library lives outside the engine.
func snakeAdvanceUp() rule.Rule {
	return rule.NewFindReplace(
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal('o')).
			Set(board.Coord{X: 0, Y: 1}, board.Literal('^')).
			Set(board.Coord{X: 0, Y: 2}, board.Literal('.')),
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).
			Set(board.Coord{X: 0, Y: 1}, board.Literal('o')).
			Set(board.Coord{X: 0, Y: 2}, board.Literal('^')),
	)
}

func snakeRule() rule.Rule {
	up := snakeAdvanceUp()
	return rule.NewOneOf(
		up,
		up.Distribute(symmetry.DirectionRotate{Quarters: 1, Arrows: snakeArrows}),
		up.Distribute(symmetry.DirectionRotate{Quarters: 2, Arrows: snakeArrows}),
		up.Distribute(symmetry.DirectionRotate{Quarters: 3, Arrows: snakeArrows}),
	)
}

func init() {
	register(Game{
		Name:    "snake",
		Rule:    snakeRule(),
		Initial: snakeBoard(),
	})
}
