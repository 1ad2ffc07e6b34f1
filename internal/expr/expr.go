// Package expr evaluates flat arithmetic expressions of the form
// number (op number)* with op in {+, -, *}.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrEmpty is returned for input without tokens.
	ErrEmpty = errors.New("empty expression")
	// ErrUnexpectedToken is returned when the input does not match the grammar.
	ErrUnexpectedToken = errors.New("unexpected token")
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokEOF
)

type token struct {
	kind  tokenKind
	value float64
	op    byte
	pos   int
}

func tokenize(text string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(text); {
		ch := text[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch == '+' || ch == '-' || ch == '*':
			tokens = append(tokens, token{kind: tokOp, op: ch, pos: i})
			i++
		case isDigit(ch) || ch == '.':
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			v, err := strconv.ParseFloat(text[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at %d: %w", text[start:i], start, err)
			}
			tokens = append(tokens, token{kind: tokNumber, value: v, pos: start})
		default:
			return nil, fmt.Errorf("%w %q at %d", ErrUnexpectedToken, ch, i)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(text)})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// sum := product (('+' | '-') product)*
func (p *parser) sum() (float64, error) {
	left, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.op != '+' && t.op != '-') {
			return left, nil
		}
		p.next()
		right, err := p.product()
		if err != nil {
			return 0, err
		}
		if t.op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// product := operand ('*' operand)*
func (p *parser) product() (float64, error) {
	left, err := p.operand()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || t.op != '*' {
			return left, nil
		}
		p.next()
		right, err := p.operand()
		if err != nil {
			return 0, err
		}
		left *= right
	}
}

// operand := '-'? number
func (p *parser) operand() (float64, error) {
	t := p.next()
	sign := 1.0
	if t.kind == tokOp && t.op == '-' {
		sign = -1
		t = p.next()
	}
	if t.kind != tokNumber {
		return 0, fmt.Errorf("%w at %d: expected number", ErrUnexpectedToken, t.pos)
	}
	return sign * t.value, nil
}

// Eval evaluates text honoring operator precedence: 2 + 3 * 4 is 14.
func Eval(text string) (float64, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 1 {
		return 0, ErrEmpty
	}
	p := &parser{tokens: tokens}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, fmt.Errorf("%w at %d: trailing input", ErrUnexpectedToken, t.pos)
	}
	return v, nil
}

// Round2 rounds non-integral values to two decimal places.
func Round2(v float64) float64 {
	if v == math.Trunc(v) {
		return v
	}
	return math.Round(v*100) / 100
}
