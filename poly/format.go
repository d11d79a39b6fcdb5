package poly

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sp301415/ringo-algebra/arith"
)

// String returns the canonical text form of p, e.g. "144*X^2 - 12*X - 6".
// Terms are written from the highest degree down, and the zero polynomial is "0".
func (p *Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}

	parts := make([]string, 0, len(p.terms))
	for i := len(p.terms) - 1; i >= 0; i-- {
		parts = append(parts, p.formatTerm(p.terms[i]))
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), "+ -", "- ")
}

func (p *Polynomial[T]) formatTerm(t Term[T]) string {
	o := p.ops

	if t.exponent == 0 {
		return o.Format(t.coefficient)
	}

	var coeff string
	switch {
	case o.IsOne(t.coefficient):
		coeff = ""
	case o.Equal(t.coefficient, o.MinusOne()):
		coeff = "-"
	default:
		coeff = o.Format(t.coefficient) + "*"
	}

	if t.exponent == 1 {
		return coeff + "X"
	}
	return coeff + "X^" + strconv.Itoa(t.exponent)
}

// Parse parses a polynomial in the format written by [Polynomial.String].
// Terms are c*X^e, c*X, X^e, X or c, joined by + or -.
// Coefficients are parsed by the backend of T, and may contain parentheses.
// Terms with the same exponent are added together.
func Parse[T any](s string) (*Polynomial[T], error) {
	o, err := arith.Resolve[T]()
	if err != nil {
		return nil, err
	}

	tokens, err := splitTerms(s)
	if err != nil {
		return nil, err
	}

	acc := make(map[int]T, len(tokens))
	for _, tok := range tokens {
		c, e, err := parseTerm(o, tok.body)
		if err != nil {
			return nil, err
		}
		if tok.neg {
			c = o.Negate(c)
		}
		accumulate(o, acc, e, c)
	}
	return fromMap(o, acc), nil
}

type termToken struct {
	neg  bool
	body string
}

// splitTerms splits s on signs outside parentheses.
func splitTerms(s string) ([]termToken, error) {
	var tokens []termToken
	var buf strings.Builder
	neg, signed := false, false
	depth := 0

	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, arith.Errorf(arith.KindFormat, "Parse", "unbalanced parenthesis in %q", s)
			}
		case depth == 0 && (r == '+' || r == '-') && !isInnerSign(s, i):
			if signed {
				return nil, arith.Errorf(arith.KindFormat, "Parse", "repeated sign at offset %d in %q", i, s)
			}
			if body := strings.TrimSpace(buf.String()); body != "" {
				tokens = append(tokens, termToken{neg: neg, body: body})
				buf.Reset()
			}
			neg, signed = r == '-', true
			continue
		}
		if !unicode.IsSpace(r) {
			signed = false
		}
		buf.WriteRune(r)
	}

	if depth != 0 {
		return nil, arith.Errorf(arith.KindFormat, "Parse", "unbalanced parenthesis in %q", s)
	}

	body := strings.TrimSpace(buf.String())
	if body == "" {
		if signed {
			return nil, arith.Errorf(arith.KindFormat, "Parse", "dangling sign in %q", s)
		}
	} else {
		tokens = append(tokens, termToken{neg: neg, body: body})
	}

	if len(tokens) == 0 {
		return nil, arith.Errorf(arith.KindFormat, "Parse", "no terms in %q", s)
	}
	return tokens, nil
}

// isInnerSign reports whether the sign at s[i] belongs to a term,
// as in an exponent "X^-1" or a float literal "1e-07".
func isInnerSign(s string, i int) bool {
	if i == 0 {
		return false
	}

	switch s[i-1] {
	case '^', '*':
		return true
	case 'e', 'E':
		return i >= 2 && (isDigit(s[i-2]) || s[i-2] == '.')
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// parseTerm parses a single unsigned term.
func parseTerm[T any](o *arith.Ops[T], body string) (T, int, error) {
	idx, err := indexVariable(body)
	if err != nil {
		return o.Zero(), 0, err
	}
	if idx < 0 {
		c, err := o.Parse(body)
		return c, 0, err
	}

	head := strings.TrimSpace(body[:idx])
	tail := strings.TrimSpace(body[idx+1:])

	e := 1
	if tail != "" {
		exp, ok := strings.CutPrefix(tail, "^")
		if !ok {
			return o.Zero(), 0, arith.Errorf(arith.KindFormat, "Parse", "malformed exponent in %q", body)
		}
		if e, err = strconv.Atoi(strings.TrimSpace(exp)); err != nil {
			return o.Zero(), 0, arith.Wrap(arith.KindFormat, "Parse", err)
		}
		if e < 0 {
			return o.Zero(), 0, arith.Errorf(arith.KindFormat, "Parse", "negative exponent in %q", body)
		}
	}

	if head == "" {
		return o.One(), e, nil
	}
	coeff, ok := strings.CutSuffix(head, "*")
	if !ok {
		return o.Zero(), 0, arith.Errorf(arith.KindFormat, "Parse", "missing '*' in %q", body)
	}
	coeff = strings.TrimSpace(coeff)
	if coeff == "" {
		return o.Zero(), 0, arith.Errorf(arith.KindFormat, "Parse", "missing coefficient in %q", body)
	}

	c, err := o.Parse(coeff)
	return c, e, err
}

// indexVariable returns the index of the variable X outside parentheses, or -1.
func indexVariable(body string) (int, error) {
	idx, depth := -1, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case 'X', 'x':
			if depth > 0 {
				continue
			}
			if idx >= 0 {
				return -1, arith.Errorf(arith.KindFormat, "Parse", "repeated variable in %q", body)
			}
			idx = i
		}
	}
	return idx, nil
}
