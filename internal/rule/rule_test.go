package rule

import (
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
	"github.com/lgbarn/boardalgebra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moveOnceFor is the pawn-forward rule used throughout, parameterized by
// the moving piece's character: a piece with an explicit empty-square
// marker directly above it advances into that marker. Absence is not the
// same as '.' — a board must explicitly mark in-play empty squares
// for patterns to see them as empty. PieceOfInterest bodies are written
// in terms of '%', the free variable substituted in by the enclosing
// scope, never the concrete piece letter.
func moveOnceFor(piece byte) *FindReplace {
	pat := board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 0}, board.Literal(piece))
	repl := board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal(piece)).
		Set(board.Coord{X: 0, Y: 0}, board.Literal('.'))
	return NewFindReplace(pat, repl)
}

func moveOnce() *FindReplace { return moveOnceFor('p') }

func TestIdentityFindReplace(t *testing.T) {
	b := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('p'))
	id := NewFindReplace(board.New(), board.New())
	out, err := id.ApplyOne(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(b))
}

func TestSequenceAndOneOfNeutrality(t *testing.T) {
	b := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('p'))
	out, err := NewSequence().ApplyOne(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(b))

	out2, err := NewOneOf().ApplyOne(b)
	require.NoError(t, err)
	assert.Empty(t, out2)
}

func TestRepeatZero(t *testing.T) {
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.'))
	zero := uint(0)
	rep, err := NewRepeat(moveOnce(), 0, &zero, false)
	require.NoError(t, err)
	out, err := rep.ApplyOne(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(b))
}

func TestRepeatBoundsRejectsInverted(t *testing.T) {
	zero := uint(0)
	_, err := NewRepeat(moveOnce(), 1, &zero, false)
	require.Error(t, err)
}

// S1: three columns, rows bottom-up "p.p", "..p", "...". Exactly two
// successors: the column-0 pawn advances, and the column-2 pawn already
// sitting one row up advances again; the column-2 pawn at the bottom
// cannot move because its front square is occupied by the other one.
func TestFindReplacePawnAdvanceS1(t *testing.T) {
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 1, Y: 0}, board.Literal('.')).
		Set(board.Coord{X: 2, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 1, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 2, Y: 1}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 2}, board.Literal('.')).
		Set(board.Coord{X: 1, Y: 2}, board.Literal('.')).
		Set(board.Coord{X: 2, Y: 2}, board.Literal('.'))

	out, err := moveOnce().ApplyOne(b)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// S3: %p: (move_once){2} over a row of pawns with two empty ranks above
// each; every pawn advances two rows independently.
func TestPieceOfInterestAdvancesEachPawnIndependently(t *testing.T) {
	b := board.New()
	for x := 0; x < 4; x++ {
		b.Set(board.Coord{X: x, Y: 0}, board.Literal('p'))
		b.Set(board.Coord{X: x, Y: 1}, board.Literal('.'))
		b.Set(board.Coord{X: x, Y: 2}, board.Literal('.'))
	}
	two := uint(2)
	body, err := NewRepeat(moveOnceFor('%'), 2, &two, false)
	require.NoError(t, err)
	poi, err := NewPieceOfInterest('p', body)
	require.NoError(t, err)

	results, err := poi.ApplyOne(b)
	require.NoError(t, err)
	assert.Len(t, results, 4)
	for _, r := range results {
		count := 0
		for _, spec := range r {
			if ch, ok := spec.LiteralByte(); ok && ch == 'p' {
				count++
			}
		}
		assert.Equal(t, 4, count, "every pawn still present, one per successor advanced")
	}
}

// S4-style unbounded repeat along a file, blocked by an obstacle: two
// reachable squares beyond the start, plus the unmoved start itself.
func TestRepeatUnboundedStopsAtObstacle(t *testing.T) {
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 2}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 3}, board.Literal('K'))
	rep, err := NewRepeat(moveOnce(), 0, nil, false)
	require.NoError(t, err)
	results, err := rep.ApplyOne(b)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

// S5-style greedy vs non-greedy over a synthetic bounce: greedy keeps
// only the final frontier, non-greedy unions every frontier from
// AtLeast onward.
func TestRepeatGreedyKeepsOnlyFinalFrontier(t *testing.T) {
	up := NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('u')),
		board.New().Set(board.Coord{X: 0, Y: 1}, board.Literal('u')),
	)
	two := uint(2)
	greedy, err := NewRepeat(up, 0, &two, true)
	require.NoError(t, err)
	nonGreedy, err := NewRepeat(up, 0, &two, false)
	require.NoError(t, err)

	b := board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('u'))
	gOut, err := greedy.ApplyOne(b)
	require.NoError(t, err)
	ngOut, err := nonGreedy.ApplyOne(b)
	require.NoError(t, err)

	assert.Len(t, gOut, 1)
	assert.Len(t, ngOut, 3) // start, after 1 step, after 2 steps
}

// Distributing a symmetry over a rule and evaluating it on the
// symmetry-mapped board produces the symmetry-mapped successors of
// evaluating the original rule on the original board.
func TestDistributionCommutesWithEvaluation(t *testing.T) {
	r := moveOnce()
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.'))
	m := symmetry.Geometric{Move: board.Rotate(1)}

	direct, err := r.ApplyOne(b)
	require.NoError(t, err)
	var expected []board.Board
	for _, d := range direct {
		expected = append(expected, symmetry.ApplyToBoard(m, d))
	}

	rotatedRule := r.Distribute(m)
	rotatedBoard := symmetry.ApplyToBoard(m, b)
	actual, err := rotatedRule.ApplyOne(rotatedBoard)
	require.NoError(t, err)

	testutil.AssertBoardsEquivalent(t, actual, expected)
}

// A full rotation (four quarter turns) distributes as the identity on a
// rule.
func TestRotationGroupOfFourIsIdentityOnRules(t *testing.T) {
	r := moveOnce()
	distributed := r.Distribute(symmetry.Geometric{Move: board.Rotate(4)})
	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.'))

	want, err := r.ApplyOne(b)
	require.NoError(t, err)
	got, err := distributed.ApplyOne(b)
	require.NoError(t, err)
	testutil.AssertBoardsEquivalent(t, got, want)
}
