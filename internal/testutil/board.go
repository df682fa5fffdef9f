// Package testutil provides shared test utilities for the boardalgebra
// project. These utilities reduce duplication across test files and
// provide consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/boardalgebra/internal/board"
)

// MustParseBoard parses a board-fragment text and fails the test on error.
func MustParseBoard(t *testing.T, text string) board.Board {
	t.Helper()
	b, err := board.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse board fragment %q: %v", text, err)
	}
	return b
}

// FingerprintSet returns the set of fingerprints of bs, for
// order-independent successor-set comparisons.
func FingerprintSet(bs []board.Board) map[uint64]bool {
	out := make(map[uint64]bool, len(bs))
	for _, b := range bs {
		out[b.Fingerprint()] = true
	}
	return out
}

// AssertBoardsEquivalent fails the test unless got and want contain the
// same boards, order and duplication aside, by comparing fingerprint sets.
func AssertBoardsEquivalent(t *testing.T, got, want []board.Board) {
	t.Helper()
	gs, ws := FingerprintSet(got), FingerprintSet(want)
	if len(gs) != len(ws) {
		t.Fatalf("got %d distinct successors, want %d", len(gs), len(ws))
	}
	for fp := range ws {
		if !gs[fp] {
			t.Fatalf("expected successor with fingerprint %d missing from result", fp)
		}
	}
}
