// Package pattern implements Find/Replace over the sparse board model: the
// anchor-based search for pattern occurrences and the delete-then-write
// replacement step that together back the FindReplace rule combinator.
package pattern

import (
	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
)

// Offset is a pure translation between a pattern's local coordinates and a
// board's coordinates. Find never reports a rotation: every occurrence of
// a pattern is a translated copy of it, never a rotated one (rotating the
// pattern itself is the caller's job, via distribution).
type Offset struct {
	DX, DY int
}

// MatchAt reports whether pattern matches b when its local coordinates are
// translated by off.
func MatchAt(pattern, b board.Board, off Offset) bool {
	for c, spec := range pattern {
		target := c.Add(off.DX, off.DY)
		content, present := b.Get(target)
		var ch byte
		if present {
			ch = content.Chars[0]
		}
		if !spec.Accepts(ch, present) {
			return false
		}
	}
	return true
}

// Find returns every offset at which pattern occurs in b. It chooses an
// anchor entry from pattern to narrow the search: a positive single
// non-'.' character is preferred for selectivity, falling back to a
// literal '.' anchor, then to any positive (possibly multi-character)
// class; a pattern built only of negated classes has no usable anchor.
func Find(pattern, b board.Board) ([]Offset, error) {
	if len(pattern) == 0 {
		return nil, boarderr.Wrap(boarderr.ErrPatternShape, "can't search for empty board")
	}
	anchorCoord, anchorSpec, ok := chooseAnchor(pattern)
	if !ok {
		return nil, boarderr.Wrap(boarderr.ErrPatternShape, "can't search without a positive anchor")
	}
	var offsets []Offset
	for _, c := range b.Coords() {
		spec, _ := b.Get(c)
		ch, isLiteral := spec.LiteralByte()
		if !isLiteral || !anchorSpec.Accepts(ch, true) {
			continue
		}
		off := Offset{DX: c.X - anchorCoord.X, DY: c.Y - anchorCoord.Y}
		if MatchAt(pattern, b, off) {
			offsets = append(offsets, off)
		}
	}
	return offsets, nil
}

func chooseAnchor(pattern board.Board) (board.Coord, board.SquareSpec, bool) {
	var dotCoord, multiCoord board.Coord
	var dotSpec, multiSpec board.SquareSpec
	haveDot, haveMulti := false, false
	for _, c := range pattern.Coords() {
		spec := pattern[c]
		if spec.Negated {
			continue
		}
		if spec.IsPositiveAnchor() {
			return c, spec, true
		}
		if !haveDot && spec.Chars == "." {
			dotCoord, dotSpec, haveDot = c, spec, true
		}
		if !haveMulti && len(spec.Chars) > 1 {
			multiCoord, multiSpec, haveMulti = c, spec, true
		}
	}
	if haveDot {
		return dotCoord, dotSpec, true
	}
	if haveMulti {
		return multiCoord, multiSpec, true
	}
	return board.Coord{}, board.SquareSpec{}, false
}

// Replace builds the successor board: b with pattern's footprint (at off)
// removed and replacement's footprint (at off) written. A coordinate held
// by both pattern and replacement ends up holding replacement's spec.
func Replace(pattern, replacement, b board.Board, off Offset) board.Board {
	out := b.Clone()
	for c := range pattern {
		out.Delete(c.Add(off.DX, off.DY))
	}
	for c, spec := range replacement {
		out.Set(c.Add(off.DX, off.DY), spec)
	}
	return out
}

// ApplyFindReplace returns one successor board per distinct (by
// fingerprint) result of Replace over every offset Find reports.
func ApplyFindReplace(pattern, replacement, b board.Board) ([]board.Board, error) {
	offsets, err := Find(pattern, b)
	if err != nil {
		return nil, err
	}
	var results []board.Board
	seen := make(map[uint64]bool, len(offsets))
	for _, off := range offsets {
		out := Replace(pattern, replacement, b, off)
		fp := out.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true
		results = append(results, out)
	}
	return results, nil
}
