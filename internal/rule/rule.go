// Package rule implements the five rule combinators of the board algebra:
// FindReplace, OneOf, Sequence, PieceOfInterest and Repeat. Every
// combinator satisfies the Rule interface uniformly (apply, distribute
// under a symmetry, canonical text form), and composes with the others by
// holding child Rules, mirroring the tagged-sum-type shape the design
// notes call for.
package rule

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
	"github.com/samber/lo"
)

// Rule is satisfied by every combinator. ApplyOne evaluates the rule
// against a single board; Apply lifts that over a collection, producing
// the flat deduplicated union (the "apply(boards)" operation).
// Distribute returns a new Rule with s distributed over every pattern,
// replacement, and piece label the rule holds. String renders the
// canonical textual form, the parser's inverse.
type Rule interface {
	ApplyOne(b board.Board) ([]board.Board, error)
	Apply(boards []board.Board) ([]board.Board, error)
	Distribute(s symmetry.Symmetry) Rule
	String() string
}

// applyOverBoards is the common "lift ApplyOne over a collection, then
// dedupe" implementation shared by every concrete Rule's Apply method.
func applyOverBoards(r Rule, boards []board.Board) ([]board.Board, error) {
	var out []board.Board
	for _, b := range boards {
		res, err := r.ApplyOne(b)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return dedupeBoards(out), nil
}

// dedupeBoards returns boards with duplicate fingerprints removed,
// preserving first-seen order.
func dedupeBoards(boards []board.Board) []board.Board {
	return lo.UniqBy(boards, func(b board.Board) uint64 { return b.Fingerprint() })
}

func fingerprintSet(boards []board.Board) map[uint64]bool {
	m := make(map[uint64]bool, len(boards))
	for _, b := range boards {
		m[b.Fingerprint()] = true
	}
	return m
}
