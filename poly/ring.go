package poly

import (
	"github.com/sp301415/ringo-algebra/arith"
)

// Add returns p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	acc := p.toMap()
	for _, t := range q.terms {
		accumulate(p.ops, acc, t.exponent, t.coefficient)
	}
	return fromMap(p.ops, acc)
}

// Sub returns p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	acc := p.toMap()
	for _, t := range q.terms {
		accumulate(p.ops, acc, t.exponent, p.ops.Negate(t.coefficient))
	}
	return fromMap(p.ops, acc)
}

// Neg returns -p.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	terms := make([]Term[T], len(p.terms))
	for i, t := range p.terms {
		terms[i] = NewTerm(p.ops.Negate(t.coefficient), t.exponent)
	}
	return newSorted(p.ops, terms)
}

// ScalarMul returns c * p.
func (p *Polynomial[T]) ScalarMul(c T) *Polynomial[T] {
	terms := make([]Term[T], len(p.terms))
	for i, t := range p.terms {
		terms[i] = NewTerm(p.ops.Mul(c, t.coefficient), t.exponent)
	}
	return newSorted(p.ops, terms)
}

// shiftMul returns c * X^k * p.
func (p *Polynomial[T]) shiftMul(c T, k int) *Polynomial[T] {
	terms := make([]Term[T], len(p.terms))
	for i, t := range p.terms {
		terms[i] = NewTerm(p.ops.Mul(c, t.coefficient), t.exponent+k)
	}
	return newSorted(p.ops, terms)
}

// Mul returns p * q.
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	acc := make(map[int]T, len(p.terms)+len(q.terms))
	for _, a := range p.terms {
		if p.ops.IsZero(a.coefficient) {
			continue
		}
		for _, b := range q.terms {
			accumulate(p.ops, acc, a.exponent+b.exponent, p.ops.Mul(a.coefficient, b.coefficient))
		}
	}
	return fromMap(p.ops, acc)
}

// Square returns p^2.
func (p *Polynomial[T]) Square() *Polynomial[T] {
	return p.Mul(p)
}

// Pow returns p^n.
func (p *Polynomial[T]) Pow(n int) (*Polynomial[T], error) {
	switch {
	case n < 0:
		return nil, arith.Errorf(arith.KindUnsupported, "Pow", "negative exponent %d", n)
	case n == 0:
		return One[T](), nil
	case n == 1:
		return p.Clone(), nil
	}

	result := p.Square()
	for i := 2; i < n; i++ {
		result = result.Mul(p)
	}
	return result, nil
}

// leadingEntry returns the nonzero entry of m with the largest exponent.
func leadingEntry[T any](o *arith.Ops[T], m map[int]T) (int, T, bool) {
	deg, found := -1, false
	var lead T
	for e, c := range m {
		if e > deg && !o.IsZero(c) {
			deg, lead, found = e, c, true
		}
	}
	return deg, lead, found
}

// Divide returns the quotient and remainder of p / q by schoolbook long division.
//
// If q has a larger degree than p, the quotient is zero and the remainder is p.
// Over rings that are not fields, each quotient coefficient is a truncating division,
// so p = quo * q + rem always holds but deg(rem) < deg(q) only when the division is exact.
// Division stops as soon as a quotient coefficient truncates to zero.
func (p *Polynomial[T]) Divide(q *Polynomial[T]) (quo, rem *Polynomial[T], err error) {
	o := p.ops

	if q.IsZero() {
		return nil, nil, arith.Errorf(arith.KindDivideByZero, "Divide", "division of %v by zero polynomial", p)
	}
	if q.Degree() > p.Degree() {
		return Zero[T](), p.Clone(), nil
	}

	m := q.Degree()
	lc := q.LeadingCoefficient()

	remMap := p.toMap()
	quoMap := make(map[int]T)
	for {
		d, c, ok := leadingEntry(o, remMap)
		if !ok || d < m {
			break
		}

		qt := o.Div(c, lc)
		if o.IsZero(qt) {
			break
		}
		quoMap[d-m] = qt

		for _, t := range q.terms {
			e := t.exponent + d - m
			old, ok := remMap[e]
			if !ok {
				old = o.Zero()
			}
			remMap[e] = o.Sub(old, o.Mul(qt, t.coefficient))
		}

		// Over a field the leading term cancels exactly, even if rounding says otherwise.
		if o.IsField() {
			delete(remMap, d)
		} else if !o.IsZero(remMap[d]) {
			break
		}
	}

	return fromMap(o, quoMap), fromMap(o, remMap), nil
}

// Quo returns the quotient of p / q.
func (p *Polynomial[T]) Quo(q *Polynomial[T]) (*Polynomial[T], error) {
	quo, _, err := p.Divide(q)
	return quo, err
}

// Rem returns the remainder of p / q.
func (p *Polynomial[T]) Rem(q *Polynomial[T]) (*Polynomial[T], error) {
	_, rem, err := p.Divide(q)
	return rem, err
}

// pseudoRem returns the pseudo-remainder of p by q, i.e. the remainder of
// lc(q)^k * p / q, where every leading term cancels exactly in any ring.
// q must be nonzero.
func (p *Polynomial[T]) pseudoRem(q *Polynomial[T]) *Polynomial[T] {
	lc := q.LeadingCoefficient()
	m := q.Degree()

	r := p.Clone()
	for !r.IsZero() && r.Degree() >= m {
		r = r.ScalarMul(lc).Sub(q.shiftMul(r.LeadingCoefficient(), r.Degree()-m))
	}
	return r
}

// content returns the gcd of the coefficients of p.
func (p *Polynomial[T]) content() T {
	o := p.ops

	g := o.Zero()
	for _, t := range p.terms {
		a, b := o.Abs(t.coefficient), g
		for !o.IsZero(b) {
			_, r := o.DivRem(a, b)
			a, b = b, o.Abs(r)
		}
		g = a
	}
	return g
}

// primitivePart returns p divided by its content, with a positive leading coefficient.
func (p *Polynomial[T]) primitivePart() *Polynomial[T] {
	o := p.ops

	c := p.content()
	if o.IsZero(c) {
		return p.Clone()
	}
	if o.LessThan(p.LeadingCoefficient(), o.Zero()) {
		c = o.Negate(c)
	}

	terms := make([]Term[T], len(p.terms))
	for i, t := range p.terms {
		terms[i] = NewTerm(o.Div(t.coefficient, c), t.exponent)
	}
	return newSorted(o, terms)
}

// GCD returns the greatest common divisor of p and q by the Euclidean algorithm.
// If the gcd is a constant, One is returned.
//
// Over fields the remainders come from [Polynomial.Divide].
// Over other rings the pseudo-remainder is used and reduced to its primitive part,
// so that the degree strictly decreases. The result is then primitive
// with a positive leading coefficient, and divides p and q exactly.
func GCD[T any](p, q *Polynomial[T]) *Polynomial[T] {
	a, b := p, q
	if b.Degree() > a.Degree() {
		a, b = b, a
	}

	for !b.IsZero() {
		var r *Polynomial[T]
		if a.ops.IsField() {
			_, r, _ = a.Divide(b)
		} else {
			r = a.pseudoRem(b).primitivePart()
		}
		a, b = b, r
	}

	if a.Degree() == 0 {
		return One[T]()
	}
	if !a.ops.IsField() {
		return a.primitivePart()
	}
	return a
}

// Derivative returns the formal derivative of p.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	terms := make([]Term[T], 0, len(p.terms))
	for _, t := range p.terms {
		if t.exponent == 0 {
			continue
		}
		c := p.ops.Mul(p.ops.FromInt64(int64(t.exponent)), t.coefficient)
		terms = append(terms, NewTerm(c, t.exponent-1))
	}
	return newSorted(p.ops, terms)
}

// MakeMonic returns a copy of p whose leading coefficient is One,
// carrying the excess into the next lower term as a multiple of base.
// This keeps the value of p at X = base.
//
// p is returned unchanged if its degree is zero
// or its leading coefficient is at most One in absolute value.
func (p *Polynomial[T]) MakeMonic(base T) *Polynomial[T] {
	o := p.ops

	r := p.Clone()
	d := r.Degree()
	lc := r.LeadingCoefficient()
	if d == 0 || !o.GreaterThan(o.Abs(lc), o.One()) {
		return r
	}

	carry := o.Mul(o.Sub(lc, o.One()), base)
	r.set(d, o.One())
	r.set(d-1, o.Add(r.Coefficient(d-1), carry))
	return r
}

// MakeCoefficientsSmaller carries large coefficients of p upward in place,
// like digits of a base-m numeral, with maxSize = base / 2.
// The value of p at X = base is unchanged.
func (p *Polynomial[T]) MakeCoefficientsSmaller(base T) error {
	o := p.ops
	if o.IsZero(base) {
		return arith.Errorf(arith.KindDivideByZero, "MakeCoefficientsSmaller", "zero base")
	}
	return p.MakeCoefficientsSmallerThan(base, o.Div(base, o.Two()))
}

// MakeCoefficientsSmallerThan is MakeCoefficientsSmaller with an explicit maxSize.
//
// Walking from the lowest degree up, whenever a coefficient exceeds maxSize
// and the next higher coefficient, the excess is carried to the next higher term.
func (p *Polynomial[T]) MakeCoefficientsSmallerThan(base, maxSize T) error {
	o := p.ops
	if o.IsZero(base) {
		return arith.Errorf(arith.KindDivideByZero, "MakeCoefficientsSmallerThan", "zero base")
	}

	d := p.Degree()
	for pos := 0; pos < d; pos++ {
		c, next := p.Coefficient(pos), p.Coefficient(pos+1)
		if !o.GreaterThan(c, maxSize) || !o.GreaterThan(c, next) {
			continue
		}

		carry := o.Add(o.Div(o.Sub(c, maxSize), base), o.One())
		p.set(pos, o.Sub(c, o.Mul(carry, base)))
		p.set(pos+1, o.Add(next, carry))
	}
	return nil
}
