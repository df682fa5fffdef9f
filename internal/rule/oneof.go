package rule

import (
	"strings"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// OneOf is alternation: the union of every child rule's successors,
// deduplicated, preserving first-seen order. OneOf([]).Apply(b) = [] for
// every board.
type OneOf struct {
	Rules []Rule
}

func NewOneOf(rules ...Rule) *OneOf {
	return &OneOf{Rules: rules}
}

func (o *OneOf) ApplyOne(b board.Board) ([]board.Board, error) {
	var out []board.Board
	for _, r := range o.Rules {
		res, err := r.ApplyOne(b)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return dedupeBoards(out), nil
}

func (o *OneOf) Apply(boards []board.Board) ([]board.Board, error) {
	return applyOverBoards(o, boards)
}

func (o *OneOf) Distribute(s symmetry.Symmetry) Rule {
	rules := make([]Rule, len(o.Rules))
	for i, r := range o.Rules {
		rules[i] = r.Distribute(s)
	}
	return &OneOf{Rules: rules}
}

// String renders "(R1)|(R2)|...". An empty OneOf can only be constructed
// through the API, never round-tripped through text, so it prints as the
// sentinel "nil" rather than any parsable form.
func (o *OneOf) String() string {
	if len(o.Rules) == 0 {
		return "nil"
	}
	parts := make([]string, len(o.Rules))
	for i, r := range o.Rules {
		parts[i] = "(" + r.String() + ")"
	}
	return strings.Join(parts, "|")
}
