// Package poly implements univariate polynomials over any coefficient type
// registered with package arith: ring arithmetic, long division and GCD,
// reduction modulo integers and polynomials, and modular exponentiation.
//
// Polynomials are sparse. Coefficient values are treated as immutable,
// so terms may share reference-typed coefficients such as *big.Int.
package poly

import (
	"cmp"
	"slices"

	"github.com/sp301415/ringo-algebra/arith"
)

// Polynomial is a sparse univariate polynomial with coefficients of type T.
//
// Terms are kept in ascending exponent order with unique exponents,
// and zero coefficients are pruned after every mutation.
// The zero polynomial is represented by the single term 0 * X^0.
//
// A Polynomial is not safe for concurrent mutation; Clone it before sharing.
type Polynomial[T any] struct {
	ops   *arith.Ops[T]
	terms []Term[T]
}

// New creates a new Polynomial from the given terms.
// Terms with the same exponent are added together.
//
// Panics if T has no registered backend.
func New[T any](terms ...Term[T]) (*Polynomial[T], error) {
	o := arith.MustResolve[T]()

	acc := make(map[int]T, len(terms))
	for _, t := range terms {
		if t.exponent < 0 {
			return nil, arith.Errorf(arith.KindInvalidArgument, "New", "negative exponent %d", t.exponent)
		}
		accumulate(o, acc, t.exponent, t.coefficient)
	}

	return fromMap(o, acc), nil
}

// NewFromCoefficients creates a new Polynomial from coefficients ordered
// from lowest to highest degree. (e.g. [1, 2, 3] is 1 + 2X + 3X^2)
//
// Panics if T has no registered backend.
func NewFromCoefficients[T any](coeffs ...T) *Polynomial[T] {
	o := arith.MustResolve[T]()

	terms := make([]Term[T], 0, len(coeffs))
	for i, c := range coeffs {
		terms = append(terms, NewTerm(c, i))
	}
	return newSorted(o, terms)
}

// Zero returns the zero polynomial.
func Zero[T any]() *Polynomial[T] {
	return newSorted(arith.MustResolve[T](), nil)
}

// One returns the constant polynomial 1.
func One[T any]() *Polynomial[T] {
	o := arith.MustResolve[T]()
	return newSorted(o, []Term[T]{NewTerm(o.One(), 0)})
}

// Monomial returns c * X^e.
// Panics if e is negative.
func Monomial[T any](c T, e int) *Polynomial[T] {
	if e < 0 {
		panic(arith.Errorf(arith.KindInvalidArgument, "Monomial", "negative exponent %d", e))
	}
	return newSorted(arith.MustResolve[T](), []Term[T]{NewTerm(c, e)})
}

// FromRoots returns the product of (X - r) over all roots r.
func FromRoots[T any](roots ...T) *Polynomial[T] {
	o := arith.MustResolve[T]()

	p := One[T]()
	for _, r := range roots {
		p = p.Mul(newSorted(o, []Term[T]{NewTerm(o.Negate(r), 0), NewTerm(o.One(), 1)}))
	}
	return p
}

// FromBase returns the base-m expansion of value as a polynomial of the given degree,
// such that evaluating it at base gives back value.
//
// Digits are chosen greedily from the highest place value down:
// a place is used as soon as it does not exceed the remainder, so 100 in base 10 is X^2.
// A digit never exceeds its place value, and the constant term absorbs whatever remains.
func FromBase[T any](value, base T, degree int) (*Polynomial[T], error) {
	o := arith.MustResolve[T]()

	if degree < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "FromBase", "negative degree %d", degree)
	}
	if !o.GreaterThan(base, o.One()) {
		return nil, arith.Errorf(arith.KindInvalidArgument, "FromBase", "base %s must exceed one", o.Format(base))
	}

	acc := make(map[int]T, degree+1)
	rest := value
	for i := degree; i > 0; i-- {
		place, _ := o.Pow(base, i)
		if o.GreaterThan(place, o.Abs(rest)) {
			continue
		}

		digit := o.Div(rest, place)
		if o.GreaterThan(digit, place) {
			digit = place
		}
		acc[i] = digit
		rest = o.Sub(rest, o.Mul(digit, place))
	}
	acc[0] = rest

	return fromMap(o, acc), nil
}

// newSorted creates a Polynomial from terms with unique exponents.
// It takes ownership of terms.
func newSorted[T any](o *arith.Ops[T], terms []Term[T]) *Polynomial[T] {
	slices.SortFunc(terms, func(a, b Term[T]) int {
		return cmp.Compare(a.exponent, b.exponent)
	})
	p := &Polynomial[T]{ops: o, terms: terms}
	p.prune()
	return p
}

// fromMap creates a Polynomial from an exponent to coefficient map.
func fromMap[T any](o *arith.Ops[T], m map[int]T) *Polynomial[T] {
	terms := make([]Term[T], 0, len(m))
	for e, c := range m {
		terms = append(terms, NewTerm(c, e))
	}
	return newSorted(o, terms)
}

// accumulate adds c to m[e].
func accumulate[T any](o *arith.Ops[T], m map[int]T, e int, c T) {
	if old, ok := m[e]; ok {
		m[e] = o.Add(old, c)
	} else {
		m[e] = c
	}
}

// prune removes zero terms, restoring the canonical zero term if nothing is left.
func (p *Polynomial[T]) prune() {
	p.terms = slices.DeleteFunc(p.terms, func(t Term[T]) bool {
		return p.ops.IsZero(t.coefficient)
	})
	if len(p.terms) == 0 {
		p.terms = append(p.terms, NewTerm(p.ops.Zero(), 0))
	}
}

// toMap returns the terms of p as an exponent to coefficient map.
func (p *Polynomial[T]) toMap() map[int]T {
	m := make(map[int]T, len(p.terms))
	for _, t := range p.terms {
		if !p.ops.IsZero(t.coefficient) {
			m[t.exponent] = t.coefficient
		}
	}
	return m
}

// search returns the index of exponent e in p.terms.
func (p *Polynomial[T]) search(e int) (int, bool) {
	return slices.BinarySearchFunc(p.terms, e, func(t Term[T], e int) int {
		return cmp.Compare(t.exponent, e)
	})
}

// Degree returns the highest exponent with a nonzero coefficient,
// or 0 for the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	return p.terms[len(p.terms)-1].exponent
}

// LeadingCoefficient returns the coefficient of the highest degree term.
func (p *Polynomial[T]) LeadingCoefficient() T {
	return p.terms[len(p.terms)-1].coefficient
}

// Coefficient returns the coefficient of X^e, which is zero if absent.
func (p *Polynomial[T]) Coefficient(e int) T {
	if i, ok := p.search(e); ok {
		return p.terms[i].coefficient
	}
	return p.ops.Zero()
}

// SetCoefficient sets the coefficient of X^e to c.
// Setting a coefficient to zero removes the term.
// After SetCoefficient returns, zero terms are pruned and the degree is up to date.
func (p *Polynomial[T]) SetCoefficient(e int, c T) error {
	if e < 0 {
		return arith.Errorf(arith.KindInvalidArgument, "SetCoefficient", "negative exponent %d", e)
	}
	p.set(e, c)
	return nil
}

// set is SetCoefficient for a nonnegative e.
func (p *Polynomial[T]) set(e int, c T) {
	if i, ok := p.search(e); ok {
		p.terms[i].coefficient = c
	} else {
		p.terms = slices.Insert(p.terms, i, NewTerm(c, e))
	}
	p.prune()
}

// Terms returns a copy of the terms of p in ascending exponent order.
func (p *Polynomial[T]) Terms() []Term[T] {
	return slices.Clone(p.terms)
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool {
	return len(p.terms) == 1 && p.ops.IsZero(p.terms[0].coefficient)
}

// IsOne reports whether p is the constant polynomial 1.
func (p *Polynomial[T]) IsOne() bool {
	return len(p.terms) == 1 && p.terms[0].exponent == 0 && p.ops.IsOne(p.terms[0].coefficient)
}

// Equal reports whether p and q have the same terms.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	return slices.EqualFunc(p.terms, q.terms, func(a, b Term[T]) bool {
		return a.exponent == b.exponent && p.ops.Equal(a.coefficient, b.coefficient)
	})
}

// Clone returns a copy of p that shares no terms with p.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	return &Polynomial[T]{
		ops:   p.ops,
		terms: slices.Clone(p.terms),
	}
}

// Evaluate returns p(x), using Horner's rule.
func (p *Polynomial[T]) Evaluate(x T) T {
	o := p.ops

	result := o.Zero()
	prev := p.Degree()
	for i := len(p.terms) - 1; i >= 0; i-- {
		t := p.terms[i]
		xPow, _ := o.Pow(x, prev-t.exponent)
		result = o.Add(o.Mul(result, xPow), t.coefficient)
		prev = t.exponent
	}

	xPow, _ := o.Pow(x, prev)
	return o.Mul(result, xPow)
}
