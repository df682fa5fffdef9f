package games

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/rule"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// tictacBoard builds the empty 3x3 starting grid: every square is marked
// '.' so Find can see them as empty (absence is not the same as '.').
func tictacBoard() board.Board {
	b := board.New()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			b.Set(board.Coord{X: x, Y: y}, board.Literal('.'))
		}
	}
	return b
}

// tictacRule is one mark placed on any empty square, for either side: the
// same single-cell FindReplace distributed under SideSwap gives the other
// side's move without writing it out twice.
func tictacRule() rule.Rule {
	placeX := rule.NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('.')),
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('X')),
	)
	placeO := placeX.Distribute(symmetry.SideSwap{A: 'X', B: 'O'})
	return rule.NewOneOf(placeX, placeO)
}

func init() {
	register(Game{
		Name:    "tictac",
		Rule:    tictacRule(),
		Initial: tictacBoard(),
	})
}
