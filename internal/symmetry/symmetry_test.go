package symmetry

import (
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestGeometricRotationGroupOfFour(t *testing.T) {
	b := board.New().Set(board.Coord{X: 2, Y: 3}, board.Literal('K'))
	g := Geometric{Move: board.Rotate(1)}
	out := b
	for i := 0; i < 4; i++ {
		out = ApplyToBoard(g, out)
	}
	assert.True(t, b.Equal(out))
}

func TestColourFlipSwapsCase(t *testing.T) {
	b := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('P'))
	out := ApplyToBoard(ColourFlip{}, b)
	spec, ok := out.Get(board.Rotate(2).ActOnSquare(board.Coord{X: 0, Y: 0}))
	assert.True(t, ok)
	assert.Equal(t, byte('p'), spec.Chars[0])
}

func TestSideSwapIsAnInvolution(t *testing.T) {
	s := SideSwap{A: 'X', B: 'O'}
	b := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('X'))
	once := ApplyToBoard(s, b)
	twice := ApplyToBoard(s, once)
	assert.True(t, b.Equal(twice))
	spec, _ := once.Get(board.Coord{X: 0, Y: 0})
	assert.Equal(t, byte('O'), spec.Chars[0])
}

func TestDirectionRotateCyclesArrows(t *testing.T) {
	d := DirectionRotate{Quarters: 1, Arrows: "^>v<"}
	assert.Equal(t, byte('>'), d.MapPiece('^'))
	assert.Equal(t, byte('<'), d.MapPiece('v'))
}
