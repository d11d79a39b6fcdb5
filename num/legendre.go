package num

import (
	"math/big"

	"github.com/sp301415/ringo-algebra/arith"
)

// EulersCriterion returns a^((p-1)/2) mod p.
// For an odd prime p this is 1 for quadratic residues, p-1 for non-residues and 0 if p divides a.
func EulersCriterion(a, p *big.Int) (*big.Int, error) {
	if p.Cmp(bigTwo) < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "EulersCriterion", "modulus %v must be at least 2", p)
	}

	exp := big.NewInt(0).Sub(p, bigOne)
	exp.Rsh(exp, 1)

	if isWord(p) {
		q := p.Uint64()
		x := big.NewInt(0).Mod(a, p).Uint64()
		return big.NewInt(0).SetUint64(ModExp(x, exp.Uint64(), q)), nil
	}

	x := big.NewInt(0).Mod(a, p)
	return x.Exp(x, exp, p), nil
}

// LegendreSymbol returns the Legendre symbol (a/p) in {-1, 0, 1}, for an odd prime p.
//
// It is evaluated by quadratic reciprocity: factors of two flip the sign when p = 3, 5 mod 8,
// and swapping (a/p) to (p mod a / a) flips the sign when a = p = 3 mod 4.
func LegendreSymbol(a, p *big.Int) (int, error) {
	if p.Cmp(bigTwo) < 0 {
		return 0, arith.Errorf(arith.KindInvalidArgument, "LegendreSymbol", "modulus %v must be at least 2", p)
	}

	x := big.NewInt(0).Mod(a, p)
	n := big.NewInt(0).Set(p)
	r := big.NewInt(0)

	result := 1
	for {
		if x.Sign() == 0 {
			return 0, nil
		}
		if x.Cmp(bigOne) == 0 {
			return result, nil
		}

		if x.Bit(0) == 0 {
			x.Rsh(x, 1)
			if m := r.Mod(n, bigEight).Int64(); m == 3 || m == 5 {
				result = -result
			}
			continue
		}

		if r.Mod(x, bigFour).Cmp(bigThree) == 0 && big.NewInt(0).Mod(n, bigFour).Cmp(bigThree) == 0 {
			result = -result
		}
		// (x/n) -> (n mod x / x). n strictly decreases.
		x, n = big.NewInt(0).Mod(n, x), x
	}
}

// LegendreSymbolSearch returns the first integer a >= start with (a/p) = goal.
// goal must be -1, 0 or 1.
// The search covers one full residue system; if no value qualifies, an arithmetic error is returned.
func LegendreSymbolSearch(start, p *big.Int, goal int) (*big.Int, error) {
	if goal < -1 || goal > 1 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "LegendreSymbolSearch", "goal %d is not in {-1, 0, 1}", goal)
	}
	if p.Cmp(bigTwo) < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "LegendreSymbolSearch", "modulus %v must be at least 2", p)
	}

	a := big.NewInt(0).Set(start)
	end := big.NewInt(0).Add(start, p)
	for ; a.Cmp(end) < 0; a.Add(a, bigOne) {
		l, err := LegendreSymbol(a, p)
		if err != nil {
			return nil, err
		}
		if l == goal {
			return a, nil
		}
	}

	return nil, arith.Errorf(arith.KindArithmetic, "LegendreSymbolSearch", "no value with symbol %d modulo %v", goal, p)
}
