package rule

import (
	"fmt"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/pattern"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// FindReplace is the leaf combinator: find every occurrence of Pattern in
// the board and replace it with Replacement. An empty pattern and empty
// replacement together are the identity rule.
type FindReplace struct {
	Pattern     board.Board
	Replacement board.Board
}

// NewFindReplace builds a FindReplace rule. A non-empty Pattern is
// required except for the identity case of an empty pattern and empty
// replacement together; Find itself rejects other ill-shaped patterns
// (empty, or built only of negated classes) when the rule is applied.
func NewFindReplace(pat, replacement board.Board) *FindReplace {
	return &FindReplace{Pattern: pat, Replacement: replacement}
}

func (f *FindReplace) ApplyOne(b board.Board) ([]board.Board, error) {
	if len(f.Pattern) == 0 && len(f.Replacement) == 0 {
		return []board.Board{b}, nil
	}
	return pattern.ApplyFindReplace(f.Pattern, f.Replacement, b)
}

func (f *FindReplace) Apply(boards []board.Board) ([]board.Board, error) {
	return applyOverBoards(f, boards)
}

func (f *FindReplace) Distribute(s symmetry.Symmetry) Rule {
	return &FindReplace{
		Pattern:     symmetry.ApplyToBoard(s, f.Pattern),
		Replacement: symmetry.ApplyToBoard(s, f.Replacement),
	}
}

func (f *FindReplace) String() string {
	return fmt.Sprintf("%s -> %s", board.Format(f.Pattern), board.Format(f.Replacement))
}
