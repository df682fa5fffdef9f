package games

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/rule"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// chessBoard builds the standard starting position. White pieces are
// upper-case, Black lower-case; ColourFlip's case swap is what lets a
// single rule tree, written for White, also govern Black.
func chessBoard() board.Board {
	b := board.New()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			b.Set(board.Coord{X: x, Y: y}, board.Literal('.'))
		}
	}
	backRank := "RNBQKBNR"
	for x := 0; x < 8; x++ {
		b.Set(board.Coord{X: x, Y: 0}, board.Literal(backRank[x]))
		b.Set(board.Coord{X: x, Y: 1}, board.Literal('P'))
		b.Set(board.Coord{X: x, Y: 6}, board.Literal('p'))
		b.Set(board.Coord{X: x, Y: 7}, board.Literal(toLower(backRank[x])))
	}
	return b
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// stepRule builds a rule moving piece one square along (dx,dy) into an
// empty destination.
func stepRule(piece byte, dx, dy int) rule.Rule {
	return rule.NewFindReplace(
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal(piece)).
			Set(board.Coord{X: dx, Y: dy}, board.Literal('.')),
		board.New().
			Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).
			Set(board.Coord{X: dx, Y: dy}, board.Literal(piece)),
	)
}

// slideRule builds an unbounded slide along (dx,dy): repeated application
// of a single empty-square step, stopping wherever the next square is
// occupied (Repeat's fixed-point semantics, same mechanics as a pawn
// advance chain).
func slideRule(piece byte, dx, dy int) rule.Rule {
	step := stepRule(piece, dx, dy)
	rep, err := rule.NewRepeat(step, 1, nil, false)
	if err != nil {
		panic(err) // atLeast <= atMost is always satisfied here
	}
	return rep
}

// rotated4 distributes base over all four quarter rotations and unions
// the results, covering every direction one orthogonal or diagonal vector
// implies.
func rotated4(base rule.Rule) rule.Rule {
	return rule.NewOneOf(
		base,
		base.Distribute(symmetry.Geometric{Move: board.Rotate(1)}),
		base.Distribute(symmetry.Geometric{Move: board.Rotate(2)}),
		base.Distribute(symmetry.Geometric{Move: board.Rotate(3)}),
	)
}

func pawnRule() rule.Rule {
	return stepRule('P', 0, 1)
}

func knightRule() rule.Rule {
	return rule.NewOneOf(
		rotated4(stepRule('N', 1, 2)),
		rotated4(stepRule('N', 2, 1)),
	)
}

func bishopRule() rule.Rule {
	return rotated4(slideRule('B', 1, 1))
}

func rookRule() rule.Rule {
	return rotated4(slideRule('R', 1, 0))
}

func queenRule() rule.Rule {
	return rule.NewOneOf(rotated4(slideRule('Q', 1, 1)), rotated4(slideRule('Q', 1, 0)))
}

func kingRule() rule.Rule {
	return rule.NewOneOf(rotated4(stepRule('K', 1, 0)), rotated4(stepRule('K', 1, 1)))
}

// chessRule composes one representative move generator per piece type for
// White, then distributes the whole tree under ColourFlip to obtain
// Black's moves without writing them out a second time. Captures, check,
// castling and en passant are the depth a bundled chess rule library adds
// on top of this engine; they are not this catalog's job.
func chessRule() rule.Rule {
	white := rule.NewOneOf(
		pawnRule(),
		knightRule(),
		bishopRule(),
		rookRule(),
		queenRule(),
		kingRule(),
	)
	black := white.Distribute(symmetry.ColourFlip{})
	return rule.NewOneOf(white, black)
}

func init() {
	register(Game{
		Name:    "chess",
		Rule:    chessRule(),
		Initial: chessBoard(),
	})
}
