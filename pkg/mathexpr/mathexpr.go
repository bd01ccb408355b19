// Package mathexpr evaluates the small arithmetic language learners type into
// math answers: decimal numbers, + - * / ^, parentheses, unary signs, the
// constant π (or "pi") and a prefix square root √.
//
// Evaluation never executes code. Input is checked against a character
// whitelist, bounded in length and nesting depth, and parsed by recursive descent.
package mathexpr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxLength bounds the input size in runes.
	MaxLength = 256
	// MaxDepth bounds nesting of parentheses, prefix operators and exponents.
	MaxDepth = 64
)

var (
	ErrEmpty       = errors.New("mathexpr: empty expression")
	ErrTooLong     = errors.New("mathexpr: expression too long")
	ErrTooDeep     = errors.New("mathexpr: expression nested too deeply")
	ErrInvalidChar = errors.New("mathexpr: character not allowed")
	ErrSyntax      = errors.New("mathexpr: syntax error")
	ErrNotAValue   = errors.New("mathexpr: result is not a finite number")
)

var normalizer = strings.NewReplacer(
	"**", "^",
	"×", "*",
	"·", "*",
	"÷", "/",
)

// Normalize strips whitespace, rewrites alternate operator spellings and lowercases.
func Normalize(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(normalizer.Replace(stripped))
}

// Eval normalizes and evaluates input, returning ErrNotAValue for division by
// zero or any other non-finite result.
func Eval(input string) (float64, error) {
	src := Normalize(input)
	if src == "" {
		return 0, ErrEmpty
	}
	if utf8.RuneCountInString(src) > MaxLength {
		return 0, ErrTooLong
	}
	for _, r := range src {
		if !allowed(r) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidChar, r)
		}
	}

	p := &parser{src: []rune(src)}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotAValue
	}
	return v, nil
}

func allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("+-*/^().", r):
		return true
	case r == 'π' || r == '√' || r == 'p' || r == 'i':
		return true
	}
	return false
}

// parser implements:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | "π" | "pi" | "√" primary | "(" expr ")"
type parser struct {
	src   []rune
	pos   int
	depth int
}

func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return ErrTooDeep
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, ErrNotAValue
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-', '+':
		neg := p.peek() == '-'
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		v, err := p.unary()
		p.leave()
		if neg {
			v = -v
		}
		return v, err
	}
	return p.power()
}

func (p *parser) power() (float64, error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	if err := p.enter(); err != nil {
		return 0, err
	}
	exp, err := p.unary()
	p.leave()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) primary() (float64, error) {
	switch r := p.peek(); {
	case r == 0:
		return 0, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	case r == '(':
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		v, err := p.expr()
		p.leave()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return v, nil
	case r == 'π':
		p.pos++
		return math.Pi, nil
	case r == 'p':
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == 'i' {
			p.pos += 2
			return math.Pi, nil
		}
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, p.pos)
	case r == '√':
		p.pos++
		if err := p.enter(); err != nil {
			return 0, err
		}
		v, err := p.primary()
		p.leave()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, ErrNotAValue
		}
		return math.Sqrt(v), nil
	case r == '.' || (r >= '0' && r <= '9'):
		return p.number()
	default:
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, p.pos)
	}
}

func (p *parser) number() (float64, error) {
	start := p.pos
	dot := false
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if r == '.' {
			if dot {
				break
			}
			dot = true
		} else if r < '0' || r > '9' {
			break
		}
		p.pos++
	}
	lit := string(p.src[start:p.pos])
	if lit == "." {
		return 0, fmt.Errorf("%w: bare decimal point at %d", ErrSyntax, start)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}
