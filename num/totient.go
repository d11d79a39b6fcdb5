package num

import (
	"math/big"

	"github.com/sp301415/ringo-algebra/arith"
)

// PrimeFactors returns the distinct prime factors of n in increasing order, by trial division.
func PrimeFactors(n *big.Int) ([]*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "PrimeFactors", "%v is not positive", n)
	}

	var factors []*big.Int
	rest := big.NewInt(0).Set(n)
	d := big.NewInt(2)
	q, r := big.NewInt(0), big.NewInt(0)
	for sq := big.NewInt(4); sq.Cmp(rest) <= 0; sq.Mul(d, d) {
		if q.QuoRem(rest, d, r); r.Sign() == 0 {
			factors = append(factors, big.NewInt(0).Set(d))
			for r.Sign() == 0 {
				rest.Set(q)
				q.QuoRem(rest, d, r)
			}
		}
		if d.Cmp(bigTwo) == 0 {
			d.Add(d, bigOne)
		} else {
			d.Add(d, bigTwo)
		}
	}

	if rest.Cmp(bigOne) > 0 {
		factors = append(factors, rest)
	}
	return factors, nil
}

// EulersTotientPhi returns the number of integers in [1, n] coprime to n.
func EulersTotientPhi(n *big.Int) (*big.Int, error) {
	factors, err := PrimeFactors(n)
	if err != nil {
		return nil, arith.Errorf(arith.KindInvalidArgument, "EulersTotientPhi", "%v is not positive", n)
	}

	// phi(n) = n * prod (1 - 1/p)
	phi := big.NewInt(0).Set(n)
	t := big.NewInt(0)
	for _, p := range factors {
		t.Quo(phi, p)
		phi.Sub(phi, t)
	}
	return phi, nil
}
