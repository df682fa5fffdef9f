package rule

import (
	"fmt"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// DefaultVisitedLimit bounds the fingerprint set an unbounded Repeat may
// accumulate before it gives up with ErrRuntimeLimit. Every Repeat built
// by NewRepeat uses it; config.RepeatLimits.VisitedLimit does not change
// it.
var DefaultVisitedLimit = 200_000

// Repeat applies Body between AtLeast and AtMost times (AtMost nil means
// unbounded), expanding the frontier one iteration at a time and
// restricting each expansion to boards not already seen in this call, so
// that an unbounded Repeat terminates by cycle detection whenever the
// reachable set is finite. Greedy keeps only the final non-empty
// frontier; non-greedy unions every frontier from AtLeast onward.
type Repeat struct {
	Body     Rule
	AtLeast  uint
	AtMost   *uint
	Greedy   bool
	visitCap int // 0 means use DefaultVisitedLimit
}

// NewRepeat validates AtMost >= AtLeast (when AtMost is set).
func NewRepeat(body Rule, atLeast uint, atMost *uint, greedy bool) (*Repeat, error) {
	if atMost != nil && *atMost < atLeast {
		return nil, boarderr.Wrap(boarderr.ErrRepeatBounds, "at_most < at_least")
	}
	return &Repeat{Body: body, AtLeast: atLeast, AtMost: atMost, Greedy: greedy}, nil
}

func (r *Repeat) limit() int {
	if r.visitCap > 0 {
		return r.visitCap
	}
	return DefaultVisitedLimit
}

func (r *Repeat) ApplyOne(b board.Board) ([]board.Board, error) {
	frontier := []board.Board{b}
	for i := uint(0); i < r.AtLeast; i++ {
		next, err := applyOverBoards(r.Body, frontier)
		if err != nil {
			return nil, err
		}
		frontier = next
	}

	visited := fingerprintSet(frontier)
	frontiers := [][]board.Board{frontier}

	for i := r.AtLeast; r.AtMost == nil || i < *r.AtMost; i++ {
		next, err := applyOverBoards(r.Body, frontier)
		if err != nil {
			return nil, err
		}
		var fresh []board.Board
		for _, nb := range next {
			fp := nb.Fingerprint()
			if visited[fp] {
				continue
			}
			visited[fp] = true
			fresh = append(fresh, nb)
		}
		if len(fresh) == 0 {
			break
		}
		if len(visited) > r.limit() {
			return nil, boarderr.Wrap(boarderr.ErrRuntimeLimit, "repeat visited set exceeded bound")
		}
		frontier = fresh
		frontiers = append(frontiers, frontier)
	}

	if r.Greedy {
		return dedupeBoards(frontiers[len(frontiers)-1]), nil
	}
	var all []board.Board
	for _, f := range frontiers {
		all = append(all, f...)
	}
	return dedupeBoards(all), nil
}

func (r *Repeat) Apply(boards []board.Board) ([]board.Board, error) {
	return applyOverBoards(r, boards)
}

func (r *Repeat) Distribute(s symmetry.Symmetry) Rule {
	return &Repeat{Body: r.Body.Distribute(s), AtLeast: r.AtLeast, AtMost: r.AtMost, Greedy: r.Greedy, visitCap: r.visitCap}
}

func (r *Repeat) String() string {
	inner := "(" + r.Body.String() + ")"
	switch {
	case r.AtLeast == 0 && r.AtMost != nil && *r.AtMost == 1:
		return inner + "?"
	case r.AtLeast == 0 && r.AtMost == nil:
		return inner + "*"
	case r.AtLeast == 1 && r.AtMost == nil:
		return inner + "+"
	case r.AtMost != nil && *r.AtMost == r.AtLeast:
		return fmt.Sprintf("%s{%d}", inner, r.AtLeast)
	case r.AtMost == nil:
		return fmt.Sprintf("%s{%d,}", inner, r.AtLeast)
	default:
		return fmt.Sprintf("%s{%d,%d}", inner, r.AtLeast, *r.AtMost)
	}
}
