package num

import (
	"math/big"

	log "github.com/sirupsen/logrus"
	"github.com/tuneinsight/lattigo/v6/ring"

	"github.com/sp301415/ringo-algebra/arith"
)

// TonelliShanks returns a square root of n modulo an odd prime p.
// Of the two roots r and p - r, the smaller one is returned.
//
// Returns an arithmetic error if n is not a quadratic residue modulo p.
func TonelliShanks(n, p *big.Int) (*big.Int, error) {
	l, err := LegendreSymbol(n, p)
	if err != nil {
		return nil, err
	}

	if p.Cmp(bigTwo) == 0 {
		return big.NewInt(0).Mod(n, p), nil
	}
	if p.Bit(0) == 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "TonelliShanks", "modulus %v is not an odd prime", p)
	}

	if l != 1 {
		return nil, arith.Errorf(arith.KindArithmetic, "TonelliShanks", "%v is not a quadratic residue modulo %v", n, p)
	}

	x := big.NewInt(0).Mod(n, p)

	// p = 3 mod 4: the root is n^((p+1)/4).
	if big.NewInt(0).Mod(p, bigFour).Cmp(bigThree) == 0 {
		e := big.NewInt(0).Add(p, bigOne)
		e.Rsh(e, 2)
		return canonicalRoot(big.NewInt(0).Exp(x, e, p), p), nil
	}

	// p - 1 = q * 2^s with q odd.
	q := big.NewInt(0).Sub(p, bigOne)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	z, err := nonResidue(p)
	if err != nil {
		return nil, err
	}

	c := big.NewInt(0).Exp(z, q, p)
	e := big.NewInt(0).Add(q, bigOne)
	e.Rsh(e, 1)
	r := big.NewInt(0).Exp(x, e, p)
	t := big.NewInt(0).Exp(x, q, p)

	t2 := big.NewInt(0)
	b := big.NewInt(0)
	for m := s; t.Cmp(bigOne) != 0; {
		// Find the least i in (0, m) with t^(2^i) = 1.
		i := 1
		t2.Mul(t, t).Mod(t2, p)
		for ; i < m && t2.Cmp(bigOne) != 0; i++ {
			t2.Mul(t2, t2).Mod(t2, p)
		}
		if i == m {
			return nil, arith.Errorf(arith.KindArithmetic, "TonelliShanks", "%v is not prime", p)
		}

		b.Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b).Mod(b, p)
		}

		r.Mul(r, b).Mod(r, p)
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		m = i
	}

	return canonicalRoot(r, p), nil
}

// canonicalRoot returns min(r, p - r).
func canonicalRoot(r, p *big.Int) *big.Int {
	neg := big.NewInt(0).Sub(p, r)
	if neg.Cmp(r) < 0 {
		return neg
	}
	return r
}

// nonResidue returns a quadratic non-residue modulo the odd prime p.
// Word-sized primes use a primitive root, which is never a residue.
func nonResidue(p *big.Int) (*big.Int, error) {
	if isWord(p) && p.ProbablyPrime(20) {
		g, _, err := ring.PrimitiveRoot(p.Uint64(), nil)
		if err == nil {
			return big.NewInt(0).SetUint64(g), nil
		}
		log.Debugf("no primitive root modulo %v: %v", p, err)
	}
	return LegendreSymbolSearch(bigTwo, p, -1)
}
