package board

import (
	"fmt"
	"strings"
)

// controlChars are body characters with cursor-movement meaning; a literal
// piece character that collides with one of them must be escaped as a
// single-character class ([c]) so that Parse's grammar does not swallow it.
const controlChars = " 01udlr;["

func isMovementPrefixChar(c byte) bool {
	switch {
	case c == 'r' || c == 'l' || c == 'u' || c == 'd' || c == 'R':
		return true
	case c == '^' || c == ' ':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}

// Parse parses a board fragment: an optional "<movement> * " prefix
// followed by a cursor-walk body (see package doc).
func Parse(text string) (Board, error) {
	prefix, body := splitPrefix(text)
	local, err := parseBody(body)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return local, nil
	}
	m, err := ParseMove(prefix)
	if err != nil {
		return nil, err
	}
	return m.ActOnBoard(local), nil
}

// splitPrefix splits off a leading "<movement> * " prefix, if present. The
// prefix is recognized only when everything before the first top-level '*'
// consists solely of movement-token characters; this is a heuristic (a
// literal '*' piece at the very start of a body that happens to be
// preceded only by movement letters is ambiguous) but matches every board
// this engine's own printer ever emits.
func splitPrefix(text string) (prefix, body string) {
	i := 0
	for i < len(text) && isMovementPrefixChar(text[i]) {
		i++
	}
	if i == 0 || i >= len(text) || text[i] != '*' {
		return "", text
	}
	prefix = strings.TrimSpace(text[:i])
	body = strings.TrimSpace(text[i+1:])
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	return prefix, body
}

func parseBody(body string) (Board, error) {
	b := New()
	x, y := 0, 0
	x0 := 0
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == ' ' || c == '1' || c == '0':
			x++
			i++
		case c == 'u':
			y++
			i++
		case c == 'd':
			y--
			i++
		case c == 'l':
			x--
			i++
		case c == 'r':
			x++
			i++
		case c == ';':
			x = x0
			y++
			i++
		case c == '[':
			end := strings.IndexByte(body[i:], ']')
			if end < 0 {
				return nil, &syntaxErr{msg: "unclosed '['", pos: i}
			}
			class := body[i+1 : i+end]
			negated := false
			if strings.HasPrefix(class, "^") {
				negated = true
				class = class[1:]
			}
			if class == "" {
				return nil, &syntaxErr{msg: "empty square class", pos: i}
			}
			spec := SquareSpec{Chars: class, Negated: negated}
			b.Set(Coord{X: x, Y: y}, spec)
			x++
			i += end + 1
		default:
			b.Set(Coord{X: x, Y: y}, Literal(c))
			x++
			i++
		}
	}
	return b, nil
}

// Format renders b in canonical text form: rows from the bottom (min Y) to
// the top (max Y), joined by ';', each row's trailing absent-square filler
// trimmed, prefixed by a translation movement if the bounding box does not
// begin at the origin.
func Format(b Board) string {
	minX, minY, maxX, maxY, ok := b.Bounds()
	if !ok {
		return "0"
	}
	var rows []string
	for y := minY; y <= maxY; y++ {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			spec, present := b.Get(Coord{X: x, Y: y})
			if !present {
				sb.WriteByte('r')
				continue
			}
			sb.WriteString(formatSpec(spec))
		}
		rows = append(rows, strings.TrimRight(sb.String(), "r"))
	}
	body := strings.Join(rows, ";")
	if minX != 0 || minY != 0 {
		return fmt.Sprintf("%s * (%s)", Slide(minX, minY).String(), body)
	}
	return body
}

func formatSpec(s SquareSpec) string {
	if s.Negated {
		return "[^" + s.Chars + "]"
	}
	if len(s.Chars) == 1 && strings.IndexByte(controlChars, s.Chars[0]) < 0 {
		return s.Chars
	}
	if len(s.Chars) == 1 {
		return "[" + s.Chars + "]"
	}
	return "[" + s.Chars + "]"
}

// syntaxErr is a small local error carrying a position, converted to a
// boarderr.SyntaxError by callers that have the original input string.
type syntaxErr struct {
	msg string
	pos int
}

func (e *syntaxErr) Error() string {
	return fmt.Sprintf("offset %d: %s", e.pos, e.msg)
}

func (e *syntaxErr) Unwrap() error {
	return errMalformedMovement
}
