package pattern

import (
	"errors"
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pawnForwardPattern() (pattern, replacement board.Board) {
	pattern = board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p'))
	replacement = board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 0}, board.Literal('.'))
	return
}

func TestFindRejectsEmptyPattern(t *testing.T) {
	_, err := Find(board.New(), board.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boarderr.ErrPatternShape))
}

func TestFindRejectsNegatedOnlyPattern(t *testing.T) {
	p := board.New().Set(board.Coord{X: 0, Y: 0}, board.NegatedClass("pP"))
	_, err := Find(p, board.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boarderr.ErrPatternShape))
}

// S1 from the scenario catalog: pawns at (0,0),(2,0) and a pre-advanced
// one at (2,1), with '.' marking the empty squares above (0,0) and (2,1).
// The (0,0) and (2,1) pawns advance; the (2,0) pawn is blocked by (2,1).
func TestFindReplacePawnAdvance(t *testing.T) {
	pattern, replacement := pawnForwardPattern()
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 2, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 2, Y: 1}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 2, Y: 2}, board.Literal('.'))

	results, err := ApplyFindReplace(pattern, replacement, b)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	for _, r := range results {
		spec, ok := r.Get(board.Coord{X: 2, Y: 0})
		assert.True(t, ok)
		assert.Equal(t, byte('p'), spec.Chars[0])
	}
}

func TestApplyFindReplaceDedupsByFingerprint(t *testing.T) {
	pattern := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('x'))
	replacement := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('y'))
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('x')).
		Set(board.Coord{X: 5, Y: 5}, board.Literal('z'))

	results, err := ApplyFindReplace(pattern, replacement, b)
	require.NoError(t, err)
	require.Len(t, results, 1)
	spec, _ := results[0].Get(board.Coord{X: 0, Y: 0})
	assert.Equal(t, byte('y'), spec.Chars[0])
}
