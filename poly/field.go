package poly

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/sp301415/ringo-algebra/arith"
	"github.com/sp301415/ringo-algebra/num"
)

// Mod returns p with every coefficient reduced into [0, |m|).
func (p *Polynomial[T]) Mod(m T) (*Polynomial[T], error) {
	terms := make([]Term[T], len(p.terms))
	for i, t := range p.terms {
		c, err := p.ops.Mod(t.coefficient, m)
		if err != nil {
			return nil, err
		}
		terms[i] = NewTerm(c, t.exponent)
	}
	return newSorted(p.ops, terms), nil
}

// ModPoly returns p mod q.
// If q has a larger degree than p, p is returned as is.
func (p *Polynomial[T]) ModPoly(q *Polynomial[T]) (*Polynomial[T], error) {
	if q.IsZero() {
		return nil, arith.Errorf(arith.KindDivideByZero, "ModPoly", "reduction of %v by zero polynomial", p)
	}
	if q.Degree() > p.Degree() {
		return p.Clone(), nil
	}
	return p.Rem(q)
}

// ModMod returns (p mod q) mod m.
func ModMod[T any](p, q *Polynomial[T], m T) (*Polynomial[T], error) {
	r, err := p.ModPoly(q)
	if err != nil {
		return nil, err
	}
	return r.Mod(m)
}

// modInverse returns the inverse of a modulo m by the extended Euclidean algorithm.
// Bezout coefficients are kept in [0, m) so that unsigned backends never wrap.
func modInverse[T any](o *arith.Ops[T], a, m T) (T, error) {
	m = o.Abs(m)
	a, err := o.Mod(a, m)
	if err != nil {
		return o.Zero(), err
	}

	r0, r1 := m, a
	s0, s1 := o.Zero(), o.One()
	for !o.IsZero(r1) {
		q, r := o.DivRem(r0, r1)
		qs, _ := o.Mod(o.Mul(q, s1), m)
		next, _ := o.Mod(o.Add(s0, o.Sub(m, qs)), m)
		r0, r1 = r1, r
		s0, s1 = s1, next
	}

	if !o.IsOne(r0) {
		return o.Zero(), arith.Errorf(arith.KindArithmetic, "modInverse", "%s is not invertible modulo %s", o.Format(a), o.Format(m))
	}
	return o.Mod(s0, m)
}

// DivideMod returns the quotient and remainder of p / q over Z_m[X].
// Every coefficient of the result is in [0, |m|).
//
// Returns a DivideByZero error if q is zero modulo m,
// and an arithmetic error if the leading coefficient of q is not invertible modulo m.
func DivideMod[T any](p, q *Polynomial[T], m T) (quo, rem *Polynomial[T], err error) {
	o := p.ops

	if q, err = q.Mod(m); err != nil {
		return nil, nil, err
	}
	if q.IsZero() {
		return nil, nil, arith.Errorf(arith.KindDivideByZero, "DivideMod", "divisor is zero modulo %s", o.Format(m))
	}
	if p, err = p.Mod(m); err != nil {
		return nil, nil, err
	}

	lcInv, err := modInverse(o, q.LeadingCoefficient(), m)
	if err != nil {
		return nil, nil, err
	}

	deg := q.Degree()
	remMap := p.toMap()
	quoMap := make(map[int]T)
	for {
		d, c, ok := leadingEntry(o, remMap)
		if !ok || d < deg {
			break
		}

		qt, _ := o.Mod(o.Mul(c, lcInv), m)
		quoMap[d-deg] = qt

		for _, t := range q.terms {
			e := t.exponent + d - deg
			old, ok := remMap[e]
			if !ok {
				old = o.Zero()
			}
			sub, _ := o.Mod(o.Mul(qt, t.coefficient), m)
			remMap[e], _ = o.Mod(o.Add(old, o.Sub(m, sub)), m)
		}
		delete(remMap, d)
	}

	return fromMap(o, quoMap), fromMap(o, remMap), nil
}

// MonicMod returns p mod m scaled so that its leading coefficient is One.
func MonicMod[T any](p *Polynomial[T], m T) (*Polynomial[T], error) {
	r, err := p.Mod(m)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return r, nil
	}

	inv, err := modInverse(p.ops, r.LeadingCoefficient(), m)
	if err != nil {
		return nil, err
	}
	return r.ScalarMul(inv).Mod(m)
}

// GCDMod returns the monic greatest common divisor of p and q over Z_m[X].
// If the gcd is a constant, One is returned.
func GCDMod[T any](p, q *Polynomial[T], m T) (*Polynomial[T], error) {
	a, err := p.Mod(m)
	if err != nil {
		return nil, err
	}
	b, err := q.Mod(m)
	if err != nil {
		return nil, err
	}
	if b.Degree() > a.Degree() {
		a, b = b, a
	}

	for !b.IsZero() {
		_, r, err := DivideMod(a, b, m)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}

	if a.Degree() == 0 {
		return One[T](), nil
	}
	return MonicMod(a, m)
}

// ModPow returns p^e mod q by repeated multiplication.
// The result is always reduced by q, including for e = 0 and e = 1.
// The running product is only reduced once its degree reaches the degree of q.
func (p *Polynomial[T]) ModPow(e int, q *Polynomial[T]) (*Polynomial[T], error) {
	if e < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "ModPow", "negative exponent %d", e)
	}
	if q.IsZero() {
		return nil, arith.Errorf(arith.KindDivideByZero, "ModPow", "zero modulus polynomial")
	}

	switch e {
	case 0:
		return One[T]().ModPoly(q)
	case 1:
		return p.ModPoly(q)
	}

	result, err := p.Square().ModPoly(q)
	if err != nil {
		return nil, err
	}
	for i := 2; i < e; i++ {
		result = result.Mul(p)
		if result.Degree() >= q.Degree() {
			if result, err = result.ModPoly(q); err != nil {
				return nil, err
			}
		}
	}
	return result.ModPoly(q)
}

// ExponentiateMod returns p^e mod (q, m) by square-and-multiply over the bits of e.
// For exact results q should be monic.
func ExponentiateMod[T any](p *Polynomial[T], e *big.Int, q *Polynomial[T], m T) (*Polynomial[T], error) {
	if e.Sign() < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "ExponentiateMod", "negative exponent %v", e)
	}
	if e.Sign() == 0 {
		return One[T]().Mod(m)
	}

	schedule := bitset.New(uint(e.BitLen()))
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			schedule.Set(uint(i))
		}
	}
	log.Debugf("ExponentiateMod: %d bits, %d set", schedule.Len(), schedule.Count())

	acc, err := ModMod(p, q, m)
	if err != nil {
		return nil, err
	}

	result := One[T]()
	if schedule.Test(0) {
		result = acc
	}
	for i := uint(1); i < schedule.Len(); i++ {
		if acc, err = ModMod(acc.Square(), q, m); err != nil {
			return nil, err
		}
		if schedule.Test(i) {
			if result, err = ModMod(result.Mul(acc), q, m); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// toBigInt converts an integer-valued coefficient to *big.Int through its text form.
func toBigInt[T any](o *arith.Ops[T], x T) (*big.Int, error) {
	n, ok := big.NewInt(0).SetString(o.Format(x), 10)
	if !ok {
		return nil, arith.Errorf(arith.KindInvalidArgument, "toBigInt", "%s is not an integer", o.Format(x))
	}
	return n, nil
}

// xPowMinusX returns X^(p^k) - X mod (f, p).
func xPowMinusX[T any](f *Polynomial[T], p T, pBig *big.Int, k int) (*Polynomial[T], error) {
	o := f.ops

	x := Monomial(o.One(), 1)
	e := big.NewInt(0).Exp(pBig, big.NewInt(int64(k)), nil)
	xp, err := ExponentiateMod(x, e, f, p)
	if err != nil {
		return nil, err
	}
	// (p-1)X keeps the coefficients nonnegative.
	return ModMod(xp.Add(Monomial(o.Sub(p, o.One()), 1)), f, p)
}

// IsIrreducibleOverField reports whether f has no roots in Z_p and no
// factors of degree one, by checking gcd(X^p - X, f) = 1 over Z_p[X].
// This is exact for degree 2 and 3. Use [IsIrreducibleRabin] for a complete test.
// Linear polynomials always divide X^p - X, so they are reported as reducible.
//
// p must be prime. Constant polynomials are never irreducible.
func IsIrreducibleOverField[T any](f *Polynomial[T], p T) (bool, error) {
	o := f.ops

	pBig, err := toBigInt(o, p)
	if err != nil {
		return false, err
	}

	fm, err := MonicMod(f, p)
	if err != nil {
		return false, err
	}
	if fm.Degree() < 1 {
		return false, nil
	}

	h, err := xPowMinusX(fm, p, pBig, 1)
	if err != nil {
		return false, err
	}
	g, err := GCDMod(h, fm, p)
	if err != nil {
		return false, err
	}
	return g.IsOne(), nil
}

// IsIrreducibleRabin reports whether f is irreducible over Z_p[X], using Rabin's test:
// f of degree n is irreducible iff f divides X^(p^n) - X
// and gcd(X^(p^(n/q)) - X, f) = 1 for every prime q dividing n.
//
// p must be prime. Constant polynomials are never irreducible.
func IsIrreducibleRabin[T any](f *Polynomial[T], p T) (bool, error) {
	o := f.ops

	pBig, err := toBigInt(o, p)
	if err != nil {
		return false, err
	}

	fm, err := MonicMod(f, p)
	if err != nil {
		return false, err
	}
	n := fm.Degree()
	if n < 1 {
		return false, nil
	}

	factors, err := num.PrimeFactors(big.NewInt(int64(n)))
	if err != nil {
		return false, err
	}
	for _, q := range factors {
		h, err := xPowMinusX(fm, p, pBig, n/int(q.Int64()))
		if err != nil {
			return false, err
		}
		g, err := GCDMod(h, fm, p)
		if err != nil {
			return false, err
		}
		if !g.IsOne() {
			return false, nil
		}
	}

	h, err := xPowMinusX(fm, p, pBig, n)
	if err != nil {
		return false, err
	}
	return h.IsZero(), nil
}
