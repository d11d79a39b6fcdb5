package arith

import (
	"encoding/binary"
	"math"
	"strconv"
)

func init() {
	Register[int64](Int64Backend{})
	Register[float64](Float64Backend{})
}

// Int64Backend is the backend of int64.
// Arithmetic wraps on overflow and division truncates toward zero.
type Int64Backend struct{}

// Zero implements [Backend].
func (Int64Backend) Zero() int64 { return 0 }

// One implements [Backend].
func (Int64Backend) One() int64 { return 1 }

// FromInt64 implements [Backend].
func (Int64Backend) FromInt64(x int64) int64 { return x }

// Add implements [Backend].
func (Int64Backend) Add(a, b int64) int64 { return a + b }

// Sub implements [Backend].
func (Int64Backend) Sub(a, b int64) int64 { return a - b }

// Mul implements [Backend].
func (Int64Backend) Mul(a, b int64) int64 { return a * b }

// Quo implements [Backend].
func (Int64Backend) Quo(a, b int64) int64 { return a / b }

// QuoRem implements [Backend].
func (Int64Backend) QuoRem(a, b int64) (int64, int64) { return a / b, a % b }

// Neg implements [Backend].
func (Int64Backend) Neg(a int64) int64 { return -a }

// Abs implements [Backend].
func (Int64Backend) Abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Trunc implements [Backend].
func (Int64Backend) Trunc(a int64) int64 { return a }

// Cmp implements [Backend].
func (Int64Backend) Cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Parse implements [Backend].
func (Int64Backend) Parse(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Format implements [Backend].
func (Int64Backend) Format(a int64) string {
	return strconv.FormatInt(a, 10)
}

// Log implements [Logger].
func (Int64Backend) Log(a int64, base float64) (float64, error) {
	return logFloat64(float64(a), base)
}

// Bytes implements [Byter].
func (Int64Backend) Bytes(a int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(a))
}

// Float64Backend is the backend of float64, treated as a field.
type Float64Backend struct{}

// IsField implements [Fielder].
func (Float64Backend) IsField() bool { return true }

// Zero implements [Backend].
func (Float64Backend) Zero() float64 { return 0 }

// One implements [Backend].
func (Float64Backend) One() float64 { return 1 }

// FromInt64 implements [Backend].
func (Float64Backend) FromInt64(x int64) float64 { return float64(x) }

// Add implements [Backend].
func (Float64Backend) Add(a, b float64) float64 { return a + b }

// Sub implements [Backend].
func (Float64Backend) Sub(a, b float64) float64 { return a - b }

// Mul implements [Backend].
func (Float64Backend) Mul(a, b float64) float64 { return a * b }

// Quo implements [Backend].
func (Float64Backend) Quo(a, b float64) float64 { return a / b }

// QuoRem implements [Backend].
func (Float64Backend) QuoRem(a, b float64) (float64, float64) { return a / b, 0 }

// Neg implements [Backend].
func (Float64Backend) Neg(a float64) float64 { return -a }

// Abs implements [Backend].
func (Float64Backend) Abs(a float64) float64 { return math.Abs(a) }

// Trunc implements [Backend].
func (Float64Backend) Trunc(a float64) float64 { return math.Trunc(a) }

// Cmp implements [Backend].
func (Float64Backend) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Parse implements [Backend].
func (Float64Backend) Parse(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Format implements [Backend].
func (Float64Backend) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Mod implements [Moder].
func (Float64Backend) Mod(a, m float64) (float64, error) {
	r := math.Mod(a, m)
	if r < 0 {
		r += math.Abs(m)
	}
	return r, nil
}

// Sqrt implements [Sqrter].
func (Float64Backend) Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, Errorf(KindInvalidArgument, "Sqrt", "negative operand %v", a)
	}
	return math.Sqrt(a), nil
}

// Log implements [Logger].
func (Float64Backend) Log(a float64, base float64) (float64, error) {
	return logFloat64(a, base)
}

// Bytes implements [Byter].
func (Float64Backend) Bytes(a float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(a))
}

// Pow implements [Power].
func (Float64Backend) Pow(a float64, n int) float64 {
	return math.Pow(a, float64(n))
}

func logFloat64(a, base float64) (float64, error) {
	if a <= 0 {
		return 0, Errorf(KindInvalidArgument, "Log", "non-positive operand %v", a)
	}
	if base <= 0 || base == 1 {
		return 0, Errorf(KindInvalidArgument, "Log", "invalid base %v", base)
	}
	return math.Log(a) / math.Log(base), nil
}
