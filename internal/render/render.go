// Package render turns a board.Board into printable text: bounded lines
// with an optional border and per-coordinate highlighting. It is the only
// piece of the external terminal UI the engine owns — cursor handling,
// input, and the event loop are the UI's job.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/boardalgebra/internal/board"
)

// Highlight decides the display style for one coordinate. A nil Highlight
// means no styling is applied.
type Highlight func(c board.Coord) (style lipgloss.Style, ok bool)

// Options controls rendering.
type Options struct {
	// Border draws a box-drawing border around the rendered bounding box.
	Border bool
	// Highlight is consulted for every in-bounds coordinate.
	Highlight Highlight
	// Empty is the rune printed for an in-bounds coordinate the board has
	// no entry for.
	Empty byte
}

var borderStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder())

// Bounds reports b's bounding box, mirroring board.Board.Bounds for UI
// callers that only import this package.
func Bounds(b board.Board) (minX, minY, maxX, maxY int, ok bool) {
	return b.Bounds()
}

// Diff reports the coordinates at which a and b disagree, for highlight
// computation.
func Diff(a, b board.Board) map[board.Coord]bool {
	return board.Diff(a, b)
}

// Lines renders b as a slice of display lines, top row first, honoring
// opts.Border and opts.Highlight. An empty board renders as no lines.
func Lines(b board.Board, opts Options) []string {
	minX, minY, maxX, maxY, ok := b.Bounds()
	if !ok {
		return nil
	}
	empty := opts.Empty
	if empty == 0 {
		empty = ' '
	}

	rows := make([]string, 0, maxY-minY+1)
	for y := maxY; y >= minY; y-- {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			c := board.Coord{X: x, Y: y}
			ch := glyph(b, c, empty)
			if opts.Highlight != nil {
				if style, ok := opts.Highlight(c); ok {
					sb.WriteString(style.Render(ch))
					continue
				}
			}
			sb.WriteString(ch)
		}
		rows = append(rows, sb.String())
	}

	if !opts.Border {
		return rows
	}
	bordered := borderStyle.Render(strings.Join(rows, "\n"))
	return strings.Split(bordered, "\n")
}

func glyph(b board.Board, c board.Coord, empty byte) string {
	spec, ok := b.Get(c)
	if !ok {
		return string(empty)
	}
	if ch, isLit := spec.LiteralByte(); isLit {
		return string(ch)
	}
	// A class spec has no single glyph; render the first character of its
	// set as a stand-in.
	if len(spec.Chars) > 0 {
		return string(spec.Chars[0])
	}
	return string(empty)
}
