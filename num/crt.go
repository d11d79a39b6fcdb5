package num

import (
	"math/big"

	"github.com/sp301415/ringo-algebra/arith"
)

// ModularMultiplicativeInverse returns x in [0, m) with a * x = 1 mod m.
//
// Returns an arithmetic error if a and m are not coprime.
func ModularMultiplicativeInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(bigTwo) < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "ModularMultiplicativeInverse", "modulus %v must be at least 2", m)
	}

	if isWord(m) {
		x := big.NewInt(0).Mod(a, m).Uint64()
		inv, ok := ModInverse(x, m.Uint64())
		if !ok {
			return nil, arith.Errorf(arith.KindArithmetic, "ModularMultiplicativeInverse", "%v has no inverse modulo %v", a, m)
		}
		return big.NewInt(0).SetUint64(inv), nil
	}

	inv := big.NewInt(0).ModInverse(big.NewInt(0).Mod(a, m), m)
	if inv == nil {
		return nil, arith.Errorf(arith.KindArithmetic, "ModularMultiplicativeInverse", "%v has no inverse modulo %v", a, m)
	}
	return inv, nil
}

// ChineseRemainderTheorem returns the unique x in [0, m_1 * ... * m_k)
// with x = residues[i] mod moduli[i] for every i.
// The moduli must be pairwise coprime.
func ChineseRemainderTheorem(moduli, residues []*big.Int) (*big.Int, error) {
	if len(moduli) == 0 || len(moduli) != len(residues) {
		return nil, arith.Errorf(arith.KindInvalidArgument, "ChineseRemainderTheorem",
			"got %d moduli and %d residues", len(moduli), len(residues))
	}

	// Compute M = m_1 * m_2 * ... * m_k
	M := big.NewInt(1)
	for _, m := range moduli {
		if m.Cmp(bigTwo) < 0 {
			return nil, arith.Errorf(arith.KindInvalidArgument, "ChineseRemainderTheorem", "modulus %v must be at least 2", m)
		}
		M.Mul(M, m)
	}

	result := big.NewInt(0)
	tmp := big.NewInt(0)
	Mi := big.NewInt(0)
	for i := range moduli {
		Mi.Quo(M, moduli[i])

		// yi = Mi^-1 mod m_i
		yi, err := ModularMultiplicativeInverse(Mi, moduli[i])
		if err != nil {
			return nil, arith.Errorf(arith.KindArithmetic, "ChineseRemainderTheorem", "moduli are not pairwise coprime: %v", err)
		}

		// result += a_i * Mi * yi
		tmp.Mul(residues[i], Mi)
		tmp.Mul(tmp, yi)
		result.Add(result, tmp)
	}

	return result.Mod(result, M), nil
}
