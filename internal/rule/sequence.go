package rule

import (
	"strings"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// Sequence is concatenation: a left fold over its children, each applied
// to the accumulated frontier of the previous one. Sequence([]).Apply(b)
// = [b] for every board.
type Sequence struct {
	Rules []Rule
}

func NewSequence(rules ...Rule) *Sequence {
	return &Sequence{Rules: rules}
}

func (s *Sequence) ApplyOne(b board.Board) ([]board.Board, error) {
	acc := []board.Board{b}
	for _, r := range s.Rules {
		next, err := applyOverBoards(r, acc)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func (s *Sequence) Apply(boards []board.Board) ([]board.Board, error) {
	return applyOverBoards(s, boards)
}

func (s *Sequence) Distribute(sym symmetry.Symmetry) Rule {
	rules := make([]Rule, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.Distribute(sym)
	}
	return &Sequence{Rules: rules}
}

// String renders "(R1)(R2)...". An empty Sequence has no canonical text
// form (like OneOf([]), it is constructed only through the API).
func (s *Sequence) String() string {
	if len(s.Rules) == 0 {
		return ""
	}
	parts := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		parts[i] = "(" + r.String() + ")"
	}
	return strings.Join(parts, "")
}
