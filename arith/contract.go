// Package arith implements the numeric capability contract for polynomial coefficients,
// and resolves each coefficient type to a cached set of operations.
package arith

// Backend is the set of operations a coefficient type T must provide.
//
// Implementations must never mutate their arguments,
// and must return freshly allocated values for reference types such as *big.Int.
type Backend[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 converts a machine integer to T.
	FromInt64(x int64) T

	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Quo returns a / b. For rings without exact division, this truncates toward zero.
	// b is never zero.
	Quo(a, b T) T
	// QuoRem returns the quotient and remainder of a / b, such that a = q * b + r.
	// b is never zero.
	QuoRem(a, b T) (q, r T)

	// Neg returns -a.
	Neg(a T) T
	// Abs returns |a|.
	Abs(a T) T
	// Trunc returns a rounded toward zero.
	Trunc(a T) T
	// Cmp returns -1, 0 or 1 if a < b, a == b or a > b.
	Cmp(a, b T) int

	// Parse parses the string produced by Format.
	Parse(s string) (T, error)
	// Format formats a such that Parse(Format(a)) == a.
	Format(a T) string
}

// Fielder is implemented by backends where every nonzero element is invertible,
// so that Quo is exact.
type Fielder interface {
	IsField() bool
}

// Moder is implemented by backends with a native residue operation.
// Mod returns a mod m in [0, |m|).
type Moder[T any] interface {
	Mod(a, m T) (T, error)
}

// Sqrter is implemented by backends with a native square root.
type Sqrter[T any] interface {
	Sqrt(a T) (T, error)
}

// Logger is implemented by backends with a native logarithm.
// Log returns the logarithm of a in the given base.
type Logger[T any] interface {
	Log(a T, base float64) (float64, error)
}

// Byter is implemented by backends with a byte encoding.
type Byter[T any] interface {
	Bytes(a T) []byte
}

// Power is implemented by backends with a native exponentiation.
// n is never negative.
type Power[T any] interface {
	Pow(a T, n int) T
}
