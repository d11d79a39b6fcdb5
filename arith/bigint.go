package arith

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// logPrec is the precision used to compute logarithms of arbitrary-precision values.
const logPrec = 128

func init() {
	Register[*big.Int](BigIntBackend{})
}

// BigIntBackend is the backend of *big.Int.
// Division truncates toward zero.
type BigIntBackend struct{}

// Zero implements [Backend].
func (BigIntBackend) Zero() *big.Int {
	return big.NewInt(0)
}

// One implements [Backend].
func (BigIntBackend) One() *big.Int {
	return big.NewInt(1)
}

// FromInt64 implements [Backend].
func (BigIntBackend) FromInt64(x int64) *big.Int {
	return big.NewInt(x)
}

// Add implements [Backend].
func (BigIntBackend) Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}

// Sub implements [Backend].
func (BigIntBackend) Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}

// Mul implements [Backend].
func (BigIntBackend) Mul(a, b *big.Int) *big.Int {
	return big.NewInt(0).Mul(a, b)
}

// Quo implements [Backend].
func (BigIntBackend) Quo(a, b *big.Int) *big.Int {
	return big.NewInt(0).Quo(a, b)
}

// QuoRem implements [Backend].
func (BigIntBackend) QuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	return big.NewInt(0).QuoRem(a, b, big.NewInt(0))
}

// Neg implements [Backend].
func (BigIntBackend) Neg(a *big.Int) *big.Int {
	return big.NewInt(0).Neg(a)
}

// Abs implements [Backend].
func (BigIntBackend) Abs(a *big.Int) *big.Int {
	return big.NewInt(0).Abs(a)
}

// Trunc implements [Backend].
func (BigIntBackend) Trunc(a *big.Int) *big.Int {
	return big.NewInt(0).Set(a)
}

// Cmp implements [Backend].
func (BigIntBackend) Cmp(a, b *big.Int) int {
	return a.Cmp(b)
}

// Parse implements [Backend].
func (BigIntBackend) Parse(s string) (*big.Int, error) {
	x, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return x, nil
}

// Format implements [Backend].
func (BigIntBackend) Format(a *big.Int) string {
	return a.String()
}

// Mod implements [Moder].
func (BigIntBackend) Mod(a, m *big.Int) (*big.Int, error) {
	// big.Int.Mod is Euclidean: the result is in [0, |m|).
	return big.NewInt(0).Mod(a, m), nil
}

// Sqrt implements [Sqrter].
func (BigIntBackend) Sqrt(a *big.Int) (*big.Int, error) {
	if a.Sign() < 0 {
		return nil, Errorf(KindInvalidArgument, "Sqrt", "negative operand %v", a)
	}
	return big.NewInt(0).Sqrt(a), nil
}

// Log implements [Logger].
func (BigIntBackend) Log(a *big.Int, base float64) (float64, error) {
	return logBigFloat(new(big.Float).SetPrec(logPrec).SetInt(a), base)
}

// Bytes implements [Byter].
// The encoding is the big-endian absolute value.
func (BigIntBackend) Bytes(a *big.Int) []byte {
	return a.Bytes()
}

// Pow implements [Power].
func (BigIntBackend) Pow(a *big.Int, n int) *big.Int {
	return big.NewInt(0).Exp(a, big.NewInt(int64(n)), nil)
}

// logBigFloat returns log_base(x).
func logBigFloat(x *big.Float, base float64) (float64, error) {
	if x.Sign() <= 0 {
		return 0, Errorf(KindInvalidArgument, "Log", "non-positive operand %v", x)
	}
	if base <= 0 || base == 1 {
		return 0, Errorf(KindInvalidArgument, "Log", "invalid base %v", base)
	}

	ln, _ := bigfloat.Log(x).Float64()
	return ln / math.Log(base), nil
}
