package board

import "strings"

// SquareSpec is a pattern class constraining the contents of one square.
//
// Chars is the non-empty set of characters the class is built from.
// When Negated is false, a square matches if its content is one of Chars
// (and the square must be present — absence never satisfies a positive
// class). When Negated is true, a square matches if its content is NOT one
// of Chars, and absence also satisfies a negated class.
//
// A literal single character (including the empty-square marker '.') is
// represented as Chars of length 1 with Negated false. The free variable
// '%' is likewise represented as the literal single character "%" — it is
// only ever written onto a concrete board by PieceOfInterest substitution,
// at which point it is matched like any other literal.
type SquareSpec struct {
	Chars   string
	Negated bool
}

// Literal builds a SquareSpec matching exactly one character.
func Literal(c byte) SquareSpec {
	return SquareSpec{Chars: string(c)}
}

// Class builds a positive multi-character class.
func Class(chars string) SquareSpec {
	return SquareSpec{Chars: chars}
}

// NegatedClass builds a negated class.
func NegatedClass(chars string) SquareSpec {
	return SquareSpec{Chars: chars, Negated: true}
}

// IsLiteral reports whether the spec matches exactly one character and
// nothing else (a single-character positive class).
func (s SquareSpec) IsLiteral() bool {
	return !s.Negated && len(s.Chars) == 1
}

// IsPositiveAnchor reports whether the spec is a good anchor for Find: a
// positive (non-negated) single character that is not the empty-square
// marker '.'. Such a spec narrows the search to board entries holding that
// exact character.
func (s SquareSpec) IsPositiveAnchor() bool {
	return s.IsLiteral() && s.Chars != "."
}

// Accepts reports whether a square whose content is c (present=true) or
// which has no entry at all (present=false) satisfies this spec.
func (s SquareSpec) Accepts(c byte, present bool) bool {
	if !present {
		return s.Negated
	}
	in := strings.IndexByte(s.Chars, c) >= 0
	if s.Negated {
		return !in
	}
	return in
}

func (s SquareSpec) Equal(o SquareSpec) bool {
	return s.Negated == o.Negated && s.Chars == o.Chars
}

// LiteralByte reports the single character this spec denotes and true, or
// (0, false) if the spec is not a plain literal.
func (s SquareSpec) LiteralByte() (byte, bool) {
	if s.IsLiteral() {
		return s.Chars[0], true
	}
	return 0, false
}
