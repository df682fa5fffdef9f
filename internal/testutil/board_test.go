package testutil

import (
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
)

func TestMustParseBoardParsesEveryEntry(t *testing.T) {
	b := MustParseBoard(t, "p.;.p")
	if len(b) != 4 {
		t.Fatalf("got %d entries, want 4", len(b))
	}
}

func TestAssertBoardsEquivalentIgnoresOrderAndDuplicates(t *testing.T) {
	a := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('p'))
	b := board.New().Set(board.Coord{X: 1, Y: 0}, board.Literal('q'))
	AssertBoardsEquivalent(t, []board.Board{b, a, a}, []board.Board{a, b})
}
