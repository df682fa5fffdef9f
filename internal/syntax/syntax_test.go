package syntax

import (
	"errors"
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
	"github.com/lgbarn/boardalgebra/internal/rule"
	"github.com/lgbarn/boardalgebra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveOnceRule() *rule.FindReplace {
	pat := board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p'))
	repl := board.New().
		Set(board.Coord{X: 0, Y: 1}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 0}, board.Literal('.'))
	return rule.NewFindReplace(pat, repl)
}

// A parsed-and-reprinted rule evaluates the same as the original.
func TestRoundTripFindReplace(t *testing.T) {
	r := moveOnceRule()
	text := Print(r)
	parsed, err := Parse(text)
	require.NoError(t, err)

	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.'))

	want, err := r.ApplyOne(b)
	require.NoError(t, err)
	got, err := parsed.ApplyOne(b)
	require.NoError(t, err)
	testutil.AssertBoardsEquivalent(t, got, want)
}

func TestRoundTripPieceOfInterestAndRepeat(t *testing.T) {
	two := uint(2)
	body, err := rule.NewRepeat(moveOnceRule(), 2, &two, false)
	require.NoError(t, err)
	poi, err := rule.NewPieceOfInterest('p', body)
	require.NoError(t, err)

	text := Print(poi)
	parsed, err := Parse(text)
	require.NoError(t, err)

	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 2}, board.Literal('.'))

	want, err := poi.ApplyOne(b)
	require.NoError(t, err)
	got, err := parsed.ApplyOne(b)
	require.NoError(t, err)
	testutil.AssertBoardsEquivalent(t, got, want)
}

func TestRoundTripOneOf(t *testing.T) {
	up := rule.NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('u')).Set(board.Coord{X: 0, Y: 1}, board.Literal('.')),
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).Set(board.Coord{X: 0, Y: 1}, board.Literal('u')),
	)
	down := rule.NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('u')).Set(board.Coord{X: 0, Y: -1}, board.Literal('.')),
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).Set(board.Coord{X: 0, Y: -1}, board.Literal('u')),
	)
	oneOf := rule.NewOneOf(up, down)
	text := Print(oneOf)
	parsed, err := Parse(text)
	require.NoError(t, err)

	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('u')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: -1}, board.Literal('.'))

	want, err := oneOf.ApplyOne(b)
	require.NoError(t, err)
	got, err := parsed.ApplyOne(b)
	require.NoError(t, err)
	testutil.AssertBoardsEquivalent(t, got, want)
}

// A PieceOfInterest whose body is a multi-step Sequence must round-trip
// to the same tree, not regroup the trailing steps as siblings of the
// PieceOfInterest itself.
func TestRoundTripPieceOfInterestWithSequenceBody(t *testing.T) {
	step1 := rule.NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('%')).Set(board.Coord{X: 0, Y: 1}, board.Literal('.')),
		board.New().Set(board.Coord{X: 0, Y: 0}, board.Literal('.')).Set(board.Coord{X: 0, Y: 1}, board.Literal('%')),
	)
	step2 := rule.NewFindReplace(
		board.New().Set(board.Coord{X: 0, Y: 1}, board.Literal('%')).Set(board.Coord{X: 0, Y: 2}, board.Literal('.')),
		board.New().Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).Set(board.Coord{X: 0, Y: 2}, board.Literal('%')),
	)
	body := rule.NewSequence(step1, step2)
	poi, err := rule.NewPieceOfInterest('p', body)
	require.NoError(t, err)

	text := Print(poi)
	parsed, err := Parse(text)
	require.NoError(t, err)

	reparsed, ok := parsed.(*rule.PieceOfInterest)
	require.True(t, ok, "re-parsed tree must still be rooted at a PieceOfInterest, got %T", parsed)
	_, ok = reparsed.Body.(*rule.Sequence)
	require.True(t, ok, "re-parsed PieceOfInterest's body must still be the full Sequence, got %T", reparsed.Body)

	b := board.New().
		Set(board.Coord{X: 0, Y: 0}, board.Literal('p')).
		Set(board.Coord{X: 0, Y: 1}, board.Literal('.')).
		Set(board.Coord{X: 0, Y: 2}, board.Literal('.'))

	want, err := poi.ApplyOne(b)
	require.NoError(t, err)
	got, err := parsed.ApplyOne(b)
	require.NoError(t, err)
	testutil.AssertBoardsEquivalent(t, got, want)
}

func TestOneOfEmptyPrintsNilAndIsNotParsable(t *testing.T) {
	empty := rule.NewOneOf()
	assert.Equal(t, "nil", Print(empty))
	_, err := Parse("nil")
	require.Error(t, err)
}

func TestParseRejectsUnclosedParen(t *testing.T) {
	_, err := Parse("(p;. -> .;p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boarderr.ErrMalformedRuleText))
}

func TestParseRejectsMalformedRepeatBound(t *testing.T) {
	_, err := Parse("(p;. -> .;p){x}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boarderr.ErrMalformedRuleText))
}

func TestParseQuantifiers(t *testing.T) {
	r, err := Parse("(p;. -> .;p)*")
	require.NoError(t, err)
	rep, ok := r.(*rule.Repeat)
	require.True(t, ok)
	assert.Equal(t, uint(0), rep.AtLeast)
	assert.Nil(t, rep.AtMost)
}
