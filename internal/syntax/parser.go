package syntax

import (
	"strconv"
	"strings"

	"github.com/lgbarn/boardalgebra/internal/board"
	"github.com/lgbarn/boardalgebra/internal/boarderr"
	"github.com/lgbarn/boardalgebra/internal/rule"
)

// Parser is a two-token-lookahead recursive-descent parser over the rule
// grammar: atom = "(rule)" | "%c: rule" | "board -> board"; postfix
// quantifier suffixes *, +, ?, {n}, {n,}, {n,m}; implicit concatenation
// for Sequence; infix | for OneOf, binding looser than concatenation.
type Parser struct {
	lex     *Lexer
	current Token
	peek    Token
	input   string
}

// NewParser creates a parser over input.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input), input: input}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

// Parse parses a complete rule expression.
func Parse(input string) (rule.Rule, error) {
	p := NewParser(input)
	r, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.current.Type != EOF {
		return nil, p.errorf("expected end of input", "")
	}
	return r, nil
}

func (p *Parser) errorf(expected, got string) error {
	return &boarderr.SyntaxError{
		Err:      boarderr.ErrMalformedRuleText,
		Input:    p.input,
		Pos:      p.current.Pos,
		Expected: expected,
		Got:      got,
	}
}

func (p *Parser) atAtomStart() bool {
	switch p.current.Type {
	case LPAREN, PERCENTDECL, BOARD, ARROW:
		return true
	}
	return false
}

// parseAlternation parses "seq | seq | ...", the loosest-binding form.
func (p *Parser) parseAlternation() (rule.Rule, error) {
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.current.Type != PIPE {
		return first, nil
	}
	terms := []rule.Rule{first}
	for p.current.Type == PIPE {
		p.advance()
		next, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	return rule.NewOneOf(terms...), nil
}

// parseSequence parses a run of quantified atoms, implicit concatenation.
func (p *Parser) parseSequence() (rule.Rule, error) {
	var terms []rule.Rule
	for p.atAtomStart() {
		t, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, p.errorf("a rule atom", tokenDescription(p.current))
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return rule.NewSequence(terms...), nil
}

func tokenDescription(t Token) string {
	if t.Literal != "" {
		return t.Literal
	}
	return t.Type.String()
}

// parseQuantified parses an atom followed by an optional postfix
// quantifier. The surface grammar has no way to spell Repeat's greedy
// flag; every text-parsed Repeat is non-greedy (greedy repetition is
// constructed only through the API).
func (p *Parser) parseQuantified() (rule.Rule, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.current.Type {
	case STAR:
		p.advance()
		return rule.NewRepeat(atom, 0, nil, false)
	case PLUS:
		p.advance()
		return rule.NewRepeat(atom, 1, nil, false)
	case QUESTION:
		p.advance()
		one := uint(1)
		return rule.NewRepeat(atom, 0, &one, false)
	case BRACE:
		lo, hi, err := parseBraceBounds(p.current.Literal)
		if err != nil {
			return nil, err
		}
		p.advance()
		return rule.NewRepeat(atom, lo, hi, false)
	default:
		return atom, nil
	}
}

func parseBraceBounds(text string) (lo uint, hi *uint, err error) {
	parts := strings.SplitN(text, ",", 2)
	n, convErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	if convErr != nil || n < 0 {
		return 0, nil, boarderr.Wrapf(boarderr.ErrMalformedRuleText, "ill-formed repeat bound %q", text)
	}
	lo = uint(n)
	if len(parts) == 1 {
		h := lo
		return lo, &h, nil
	}
	upper := strings.TrimSpace(parts[1])
	if upper == "" {
		return lo, nil, nil
	}
	m, convErr := strconv.Atoi(upper)
	if convErr != nil || m < 0 {
		return 0, nil, boarderr.Wrapf(boarderr.ErrMalformedRuleText, "ill-formed repeat bound %q", text)
	}
	h := uint(m)
	return lo, &h, nil
}

// parseAtom parses "(rule)", "%c: rule", or "board -> board" (either side
// may be the empty board when its token is absent).
func (p *Parser) parseAtom() (rule.Rule, error) {
	switch p.current.Type {
	case LPAREN:
		p.advance()
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.current.Type != RPAREN {
			return nil, p.errorf(")", tokenDescription(p.current))
		}
		p.advance()
		return inner, nil
	case PERCENTDECL:
		piece := p.current.Literal[0]
		p.advance()
		body, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		return rule.NewPieceOfInterest(piece, body)
	case BOARD, ARROW:
		return p.parseFindReplace()
	default:
		return nil, p.errorf("a rule atom", tokenDescription(p.current))
	}
}

func (p *Parser) parseFindReplace() (rule.Rule, error) {
	left := board.New()
	if p.current.Type == BOARD {
		b, err := parseBoardToken(p, p.current)
		if err != nil {
			return nil, err
		}
		left = b
		p.advance()
	}
	if p.current.Type != ARROW {
		return nil, p.errorf("->", tokenDescription(p.current))
	}
	p.advance()
	right := board.New()
	if p.current.Type == BOARD {
		b, err := parseBoardToken(p, p.current)
		if err != nil {
			return nil, err
		}
		right = b
		p.advance()
	}
	return rule.NewFindReplace(left, right), nil
}

func parseBoardToken(p *Parser, tok Token) (board.Board, error) {
	b, err := board.Parse(tok.Literal)
	if err != nil {
		return nil, &boarderr.SyntaxError{
			Err:      boarderr.ErrMalformedBoardText,
			Input:    p.input,
			Pos:      tok.Pos,
			Expected: "a board fragment",
			Got:      tok.Literal,
		}
	}
	return b, nil
}
