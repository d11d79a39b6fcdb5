package arith

import (
	"math/big"
)

// FloatPrec is the mantissa precision of *big.Float coefficients.
const FloatPrec = 256

func init() {
	Register[*big.Float](BigFloatBackend{})
}

// BigFloatBackend is the backend of *big.Float, treated as a field.
// It is the arbitrary-precision decimal backend; values are rounded to [FloatPrec] bits.
type BigFloatBackend struct{}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(FloatPrec)
}

// IsField implements [Fielder].
func (BigFloatBackend) IsField() bool {
	return true
}

// Zero implements [Backend].
func (BigFloatBackend) Zero() *big.Float {
	return newFloat()
}

// One implements [Backend].
func (BigFloatBackend) One() *big.Float {
	return newFloat().SetInt64(1)
}

// FromInt64 implements [Backend].
func (BigFloatBackend) FromInt64(x int64) *big.Float {
	return newFloat().SetInt64(x)
}

// Add implements [Backend].
func (BigFloatBackend) Add(a, b *big.Float) *big.Float {
	return newFloat().Add(a, b)
}

// Sub implements [Backend].
func (BigFloatBackend) Sub(a, b *big.Float) *big.Float {
	return newFloat().Sub(a, b)
}

// Mul implements [Backend].
func (BigFloatBackend) Mul(a, b *big.Float) *big.Float {
	return newFloat().Mul(a, b)
}

// Quo implements [Backend].
func (BigFloatBackend) Quo(a, b *big.Float) *big.Float {
	return newFloat().Quo(a, b)
}

// QuoRem implements [Backend].
func (BigFloatBackend) QuoRem(a, b *big.Float) (*big.Float, *big.Float) {
	return newFloat().Quo(a, b), newFloat()
}

// Neg implements [Backend].
func (BigFloatBackend) Neg(a *big.Float) *big.Float {
	return newFloat().Neg(a)
}

// Abs implements [Backend].
func (BigFloatBackend) Abs(a *big.Float) *big.Float {
	return newFloat().Abs(a)
}

// Trunc implements [Backend].
func (BigFloatBackend) Trunc(a *big.Float) *big.Float {
	if a.IsInf() {
		return newFloat().Set(a)
	}
	i, _ := a.Int(nil)
	return newFloat().SetInt(i)
}

// Cmp implements [Backend].
func (BigFloatBackend) Cmp(a, b *big.Float) int {
	return a.Cmp(b)
}

// Parse implements [Backend].
func (BigFloatBackend) Parse(s string) (*big.Float, error) {
	x, _, err := big.ParseFloat(s, 10, FloatPrec, big.ToNearestEven)
	return x, err
}

// Format implements [Backend].
func (BigFloatBackend) Format(a *big.Float) string {
	return a.Text('g', -1)
}

// Sqrt implements [Sqrter].
func (BigFloatBackend) Sqrt(a *big.Float) (*big.Float, error) {
	if a.Sign() < 0 {
		return nil, Errorf(KindInvalidArgument, "Sqrt", "negative operand %v", a)
	}
	return newFloat().Sqrt(a), nil
}

// Log implements [Logger].
func (BigFloatBackend) Log(a *big.Float, base float64) (float64, error) {
	return logBigFloat(a, base)
}
