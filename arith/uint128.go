package arith

import (
	"lukechampine.com/uint128"
)

func init() {
	Register[uint128.Uint128](Uint128Backend{})
}

// Uint128Backend is the backend of uint128.Uint128, the ring of integers modulo 2^128.
// Addition, subtraction and multiplication wrap; negation is the additive inverse mod 2^128.
type Uint128Backend struct{}

// Zero implements [Backend].
func (Uint128Backend) Zero() uint128.Uint128 { return uint128.Zero }

// One implements [Backend].
func (Uint128Backend) One() uint128.Uint128 { return uint128.From64(1) }

// FromInt64 implements [Backend].
// Negative values wrap around 2^128.
func (Uint128Backend) FromInt64(x int64) uint128.Uint128 {
	if x < 0 {
		return uint128.Zero.SubWrap(uint128.From64(uint64(-x)))
	}
	return uint128.From64(uint64(x))
}

// Add implements [Backend].
func (Uint128Backend) Add(a, b uint128.Uint128) uint128.Uint128 { return a.AddWrap(b) }

// Sub implements [Backend].
func (Uint128Backend) Sub(a, b uint128.Uint128) uint128.Uint128 { return a.SubWrap(b) }

// Mul implements [Backend].
func (Uint128Backend) Mul(a, b uint128.Uint128) uint128.Uint128 { return a.MulWrap(b) }

// Quo implements [Backend].
func (Uint128Backend) Quo(a, b uint128.Uint128) uint128.Uint128 { return a.Div(b) }

// QuoRem implements [Backend].
func (Uint128Backend) QuoRem(a, b uint128.Uint128) (uint128.Uint128, uint128.Uint128) {
	return a.QuoRem(b)
}

// Neg implements [Backend].
func (Uint128Backend) Neg(a uint128.Uint128) uint128.Uint128 { return uint128.Zero.SubWrap(a) }

// Abs implements [Backend].
func (Uint128Backend) Abs(a uint128.Uint128) uint128.Uint128 { return a }

// Trunc implements [Backend].
func (Uint128Backend) Trunc(a uint128.Uint128) uint128.Uint128 { return a }

// Cmp implements [Backend].
func (Uint128Backend) Cmp(a, b uint128.Uint128) int { return a.Cmp(b) }

// Parse implements [Backend].
func (Uint128Backend) Parse(s string) (uint128.Uint128, error) {
	return uint128.FromString(s)
}

// Format implements [Backend].
func (Uint128Backend) Format(a uint128.Uint128) string { return a.String() }

// Bytes implements [Byter].
// The encoding is 16 bytes, little-endian.
func (Uint128Backend) Bytes(a uint128.Uint128) []byte {
	b := make([]byte, 16)
	a.PutBytes(b)
	return b
}
