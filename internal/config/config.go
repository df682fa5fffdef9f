// Package config provides the per-run configuration for the boardplay
// engine: the repeat-evaluation runtime limit and the rendering options
// the terminal UI threads through to render.Lines.
package config

import (
	"io"
	"os"
)

// RepeatLimits bounds an unbounded Repeat's cycle-detection bookkeeping
// (the fingerprint set is owned by the call frame and must not grow
// without bound).
type RepeatLimits struct {
	// VisitedLimit records a cap on how many distinct boards a single
	// Repeat call may visit. No package reads it: Repeat always applies
	// rule.DefaultVisitedLimit.
	VisitedLimit int
}

// RenderOptions controls how a board is turned into display lines.
type RenderOptions struct {
	// Border draws a box-drawing border around the rendered board.
	Border bool
	// Empty is the glyph used for an in-bounds square with no board
	// entry.
	Empty byte
	// HighlightDiff turns on highlighting of the squares that changed
	// between the board on screen and the candidate successor being
	// previewed.
	HighlightDiff bool
}

// Config holds one playthrough's configuration. Nothing about it is
// shared across calls: the caller builds one per run and threads it
// through explicitly.
type Config struct {
	Repeat RepeatLimits
	Render RenderOptions

	// Verbosity: 2 or more writes running commentary to LogFile; lower
	// levels write none.
	Verbosity int

	// Game is the catalog entry this session plays, e.g. "chess".
	Game string

	// LogFile receives commentary written at Verbosity >= 2.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Render: RenderOptions{
			Border:        true,
			Empty:         '.',
			HighlightDiff: true,
		},
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}
