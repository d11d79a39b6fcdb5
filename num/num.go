// Package num implements number-theoretic functions over arbitrary-precision integers:
// Legendre symbols, modular square roots, the Chinese Remainder Theorem,
// modular inverses and Euler's totient.
//
// Moduli below 2^63 take machine-word fast paths.
package num

import (
	"math/big"
	"math/bits"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
	bigEight = big.NewInt(8)
)

// maxWordModulus bounds the moduli that take the uint64 fast paths.
const maxWordModulus = 1 << 63

// isWord reports whether the positive integer x is a valid fast path modulus.
func isWord(x *big.Int) bool {
	return x.Sign() > 0 && x.IsUint64() && x.Uint64() < maxWordModulus
}

// ModInverse returns the modular inverse of x modulo m.
// Output is always in [0, m).
// Returns false if x and m are not coprime.
func ModInverse(x, m uint64) (uint64, bool) {
	x %= m

	// Bezout coefficients are tracked modulo m so that they stay unsigned.
	a, b := x, m
	u, v := uint64(1)%m, uint64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, SubMod(u, MulMod(q%m, v, m), m)
	}

	if a != 1 {
		return 0, false
	}

	return u % m, true
}

// ModExp returns x^y mod q.
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1) % q
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = MulMod(r, x, q)
		}
		x = MulMod(x, x, q)
		y >>= 1
	}
	return r
}

// MulMod returns x * y mod q without overflow.
func MulMod(x, y, q uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi%q, lo, q)
	return rem
}

// SubMod returns x - y mod q, for x, y in [0, q).
func SubMod(x, y, q uint64) uint64 {
	if x < y {
		return q - (y - x)
	}
	return x - y
}
