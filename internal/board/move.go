package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/boardalgebra/internal/boarderr"
)

var errMalformedMovement = boarderr.ErrMalformedBoardText

// Atom is one element of a Move: either a translation vector or a quarter
// (90 degree, counter-clockwise) rotation count in {0,1,2,3}.
type Atom struct {
	Rotation bool
	DX, DY   int // meaningful only when !Rotation
	Quarters int // meaningful only when Rotation, normalized to [0,4)
}

// Move is an element of the symmetry group: an ordered list of
// translation/rotation atoms. Identity is the empty list. Composition is
// list concatenation; acting on a point folds the atoms left to right.
type Move struct {
	Atoms []Atom
}

// Identity returns the empty move.
func Identity() Move { return Move{} }

// Slide returns a single-atom translation.
func Slide(dx, dy int) Move {
	if dx == 0 && dy == 0 {
		return Identity()
	}
	return Move{Atoms: []Atom{{DX: dx, DY: dy}}}
}

// Rotate returns a single-atom quarter rotation, q taken mod 4.
func Rotate(q int) Move {
	q = ((q % 4) + 4) % 4
	return Move{Atoms: []Atom{{Rotation: true, Quarters: q}}}
}

// Then returns the move that applies m's atoms followed by n's atoms, i.e.
// list concatenation. Acting on a point with the result is equivalent to
// acting with m then acting with n.
func (m Move) Then(n Move) Move {
	out := make([]Atom, 0, len(m.Atoms)+len(n.Atoms))
	out = append(out, m.Atoms...)
	out = append(out, n.Atoms...)
	return Move{Atoms: out}
}

// Inverse reverses the atom list and negates each atom.
func (m Move) Inverse() Move {
	out := make([]Atom, len(m.Atoms))
	for i, a := range m.Atoms {
		j := len(m.Atoms) - 1 - i
		if a.Rotation {
			out[j] = Atom{Rotation: true, Quarters: (4 - a.Quarters) % 4}
		} else {
			out[j] = Atom{DX: -a.DX, DY: -a.DY}
		}
	}
	return Move{Atoms: out}
}

// Power composes m with itself exp times (exp < 0 composes the inverse).
func (m Move) Power(exp int) Move {
	base := m
	if exp < 0 {
		base = m.Inverse()
		exp = -exp
	}
	out := Identity()
	for i := 0; i < exp; i++ {
		out = out.Then(base)
	}
	return out
}

// IsIdentity reports whether m has no atoms (or only no-op atoms).
func (m Move) IsIdentity() bool {
	for _, a := range m.Atoms {
		if a.Rotation {
			if a.Quarters%4 != 0 {
				return false
			}
		} else if a.DX != 0 || a.DY != 0 {
			return false
		}
	}
	return true
}

// ActOnPoint folds the move's atoms over a point: translations add,
// rotations apply (x, y) -> (-y, x) once per quarter turn.
func (m Move) ActOnPoint(c Coord) Coord {
	x, y := c.X, c.Y
	for _, a := range m.Atoms {
		if a.Rotation {
			for i := 0; i < a.Quarters; i++ {
				x, y = -y, x
			}
		} else {
			x += a.DX
			y += a.DY
		}
	}
	return Coord{X: x, Y: y}
}

// ActOnSquare is like ActOnPoint but corrects for squares being anchored
// at their bottom-left corner: after each rotation atom, x is decremented
// by one. This makes a full 360-degree rotation (four quarter turns,
// whether as one atom of 4 quarters applied in a loop or four separate
// atoms) act as identity on a board, and is the action used whenever a
// Move is applied to board contents rather than to a bare point.
func (m Move) ActOnSquare(c Coord) Coord {
	x, y := c.X, c.Y
	for _, a := range m.Atoms {
		if a.Rotation {
			for i := 0; i < a.Quarters; i++ {
				x, y = -y, x
				x--
			}
		} else {
			x += a.DX
			y += a.DY
		}
	}
	return Coord{X: x, Y: y}
}

// ActOnBoard applies ActOnSquare to every coordinate, leaving contents
// unchanged (geometric moves never relabel piece characters — that is the
// job of a pluggable custom Symmetry, see package symmetry).
func (m Move) ActOnBoard(b Board) Board {
	out := make(Board, len(b))
	for c, spec := range b {
		out[m.ActOnSquare(c)] = spec
	}
	return out
}

// String renders the move in the original algebra's canonical movement
// token spelling: r/l/u/d (optionally suffixed ^n) for translation atoms,
// R (optionally ^n) for rotation atoms, space-separated, "1" for identity.
func (m Move) String() string {
	if len(m.Atoms) == 0 {
		return "1"
	}
	var parts []string
	for _, a := range m.Atoms {
		if a.Rotation {
			if a.Quarters == 0 {
				continue
			}
			if a.Quarters == 1 {
				parts = append(parts, "R")
			} else {
				parts = append(parts, fmt.Sprintf("R^%d", a.Quarters))
			}
			continue
		}
		if a.DX == 1 {
			parts = append(parts, "r")
		} else if a.DX == -1 {
			parts = append(parts, "l")
		} else if a.DX > 1 {
			parts = append(parts, fmt.Sprintf("r^%d", a.DX))
		} else if a.DX < -1 {
			parts = append(parts, fmt.Sprintf("l^%d", -a.DX))
		}
		if a.DY == 1 {
			parts = append(parts, "u")
		} else if a.DY == -1 {
			parts = append(parts, "d")
		} else if a.DY > 1 {
			parts = append(parts, fmt.Sprintf("u^%d", a.DY))
		} else if a.DY < -1 {
			parts = append(parts, fmt.Sprintf("d^%d", -a.DY))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " ")
}

// ParseMove parses the canonical movement-prefix token spelling produced
// by String: whitespace-separated atoms drawn from {r,l,u,d,R}, each
// optionally suffixed by "^n", or the literal "1" for identity.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "1" {
		return Identity(), nil
	}
	var atoms []Atom
	for _, tok := range strings.Fields(text) {
		letter := tok[0]
		rest := tok[1:]
		n := 1
		if strings.HasPrefix(rest, "^") {
			v, err := strconv.Atoi(rest[1:])
			if err != nil {
				return Move{}, fmt.Errorf("ill-formed movement exponent %q: %w", tok, errMalformedMovement)
			}
			n = v
		} else if rest != "" {
			return Move{}, fmt.Errorf("unknown movement token %q: %w", tok, errMalformedMovement)
		}
		switch letter {
		case 'r':
			atoms = append(atoms, Atom{DX: n})
		case 'l':
			atoms = append(atoms, Atom{DX: -n})
		case 'u':
			atoms = append(atoms, Atom{DY: n})
		case 'd':
			atoms = append(atoms, Atom{DY: -n})
		case 'R':
			atoms = append(atoms, Atom{Rotation: true, Quarters: ((n % 4) + 4) % 4})
		default:
			return Move{}, fmt.Errorf("unknown movement prefix %q: %w", tok, errMalformedMovement)
		}
	}
	return Move{Atoms: atoms}, nil
}
