package rule

import (
	"fmt"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
	"github.com/lgbarn/boardalgebra/internal/symmetry"
)

// PieceOfInterest binds the free variable '%' to each board location
// holding Piece in turn, evaluates Body against a copy of the board with
// that one location relabeled '%', then substitutes '%' back to Piece in
// every result. If the board already holds '%' (a nested PieceOfInterest
// scope), it delegates to Body unchanged — the design notes prefer this
// copy-in/copy-out shape over mutating the caller's board in place.
type PieceOfInterest struct {
	Piece byte
	Body  Rule
}

// NewPieceOfInterest validates that piece is not itself the free
// variable.
func NewPieceOfInterest(piece byte, body Rule) (*PieceOfInterest, error) {
	if piece == '%' {
		return nil, boarderr.Wrap(boarderr.ErrTypeMismatch, "piece of interest cannot be '%'")
	}
	return &PieceOfInterest{Piece: piece, Body: body}, nil
}

func (p *PieceOfInterest) ApplyOne(b board.Board) ([]board.Board, error) {
	if containsFreeVariable(b) {
		return p.Body.ApplyOne(b)
	}
	var out []board.Board
	for _, c := range b.Coords() {
		spec, _ := b.Get(c)
		ch, ok := spec.LiteralByte()
		if !ok || ch != p.Piece {
			continue
		}
		scoped := b.Clone()
		scoped.Set(c, board.Literal('%'))
		results, err := p.Body.ApplyOne(scoped)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			out = append(out, restoreFreeVariable(r, p.Piece))
		}
	}
	return dedupeBoards(out), nil
}

func (p *PieceOfInterest) Apply(boards []board.Board) ([]board.Board, error) {
	return applyOverBoards(p, boards)
}

func (p *PieceOfInterest) Distribute(s symmetry.Symmetry) Rule {
	return &PieceOfInterest{Piece: s.MapPiece(p.Piece), Body: p.Body.Distribute(s)}
}

func (p *PieceOfInterest) String() string {
	return fmt.Sprintf("%%%c: %s", p.Piece, p.Body.String())
}

func containsFreeVariable(b board.Board) bool {
	for _, spec := range b {
		if ch, ok := spec.LiteralByte(); ok && ch == '%' {
			return true
		}
	}
	return false
}

func restoreFreeVariable(b board.Board, piece byte) board.Board {
	out := b.Clone()
	for c, spec := range b {
		if ch, ok := spec.LiteralByte(); ok && ch == '%' {
			out.Set(c, board.Literal(piece))
		}
	}
	return out
}
