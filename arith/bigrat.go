package arith

import (
	"fmt"
	"math/big"
)

func init() {
	Register[*big.Rat](BigRatBackend{})
}

// BigRatBackend is the backend of *big.Rat, the field of rationals.
type BigRatBackend struct{}

// IsField implements [Fielder].
func (BigRatBackend) IsField() bool {
	return true
}

// Zero implements [Backend].
func (BigRatBackend) Zero() *big.Rat {
	return new(big.Rat)
}

// One implements [Backend].
func (BigRatBackend) One() *big.Rat {
	return big.NewRat(1, 1)
}

// FromInt64 implements [Backend].
func (BigRatBackend) FromInt64(x int64) *big.Rat {
	return big.NewRat(x, 1)
}

// Add implements [Backend].
func (BigRatBackend) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

// Sub implements [Backend].
func (BigRatBackend) Sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

// Mul implements [Backend].
func (BigRatBackend) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// Quo implements [Backend].
func (BigRatBackend) Quo(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Quo(a, b)
}

// QuoRem implements [Backend].
// Division is exact, so the remainder is always zero.
func (BigRatBackend) QuoRem(a, b *big.Rat) (*big.Rat, *big.Rat) {
	return new(big.Rat).Quo(a, b), new(big.Rat)
}

// Neg implements [Backend].
func (BigRatBackend) Neg(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(a)
}

// Abs implements [Backend].
func (BigRatBackend) Abs(a *big.Rat) *big.Rat {
	return new(big.Rat).Abs(a)
}

// Trunc implements [Backend].
func (BigRatBackend) Trunc(a *big.Rat) *big.Rat {
	q := big.NewInt(0).Quo(a.Num(), a.Denom())
	return new(big.Rat).SetInt(q)
}

// Cmp implements [Backend].
func (BigRatBackend) Cmp(a, b *big.Rat) int {
	return a.Cmp(b)
}

// Parse implements [Backend].
func (BigRatBackend) Parse(s string) (*big.Rat, error) {
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	return x, nil
}

// Format implements [Backend].
func (BigRatBackend) Format(a *big.Rat) string {
	return a.RatString()
}

// Log implements [Logger].
func (BigRatBackend) Log(a *big.Rat, base float64) (float64, error) {
	return logBigFloat(new(big.Float).SetPrec(logPrec).SetRat(a), base)
}
