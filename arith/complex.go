package arith

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

func init() {
	Register[complex128](ComplexBackend{})
}

// ComplexBackend is the backend of complex128.
//
// Complex numbers are not ordered; Cmp orders lexicographically by real then imaginary part,
// which is enough for the equality and sign tests of the polynomial engine.
// Mod and Log are unsupported.
type ComplexBackend struct{}

// IsField implements [Fielder].
func (ComplexBackend) IsField() bool { return true }

// Zero implements [Backend].
func (ComplexBackend) Zero() complex128 { return 0 }

// One implements [Backend].
func (ComplexBackend) One() complex128 { return 1 }

// FromInt64 implements [Backend].
func (ComplexBackend) FromInt64(x int64) complex128 { return complex(float64(x), 0) }

// Add implements [Backend].
func (ComplexBackend) Add(a, b complex128) complex128 { return a + b }

// Sub implements [Backend].
func (ComplexBackend) Sub(a, b complex128) complex128 { return a - b }

// Mul implements [Backend].
func (ComplexBackend) Mul(a, b complex128) complex128 { return a * b }

// Quo implements [Backend].
func (ComplexBackend) Quo(a, b complex128) complex128 { return a / b }

// QuoRem implements [Backend].
func (ComplexBackend) QuoRem(a, b complex128) (complex128, complex128) { return a / b, 0 }

// Neg implements [Backend].
func (ComplexBackend) Neg(a complex128) complex128 { return -a }

// Abs implements [Backend].
func (ComplexBackend) Abs(a complex128) complex128 { return complex(cmplx.Abs(a), 0) }

// Trunc implements [Backend].
func (ComplexBackend) Trunc(a complex128) complex128 {
	return complex(math.Trunc(real(a)), math.Trunc(imag(a)))
}

// Cmp implements [Backend].
func (ComplexBackend) Cmp(a, b complex128) int {
	switch {
	case real(a) < real(b):
		return -1
	case real(a) > real(b):
		return 1
	case imag(a) < imag(b):
		return -1
	case imag(a) > imag(b):
		return 1
	}
	return 0
}

// Parse implements [Backend].
// It accepts "(re, im)" as produced by Format, and plain real literals.
func (ComplexBackend) Parse(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		re, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return complex(re, 0), nil
	}

	if !strings.HasSuffix(s, ")") {
		return 0, fmt.Errorf("unterminated complex literal %q", s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid complex literal %q", s)
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, err
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// Format implements [Backend].
func (ComplexBackend) Format(a complex128) string {
	return "(" + strconv.FormatFloat(real(a), 'g', -1, 64) + ", " + strconv.FormatFloat(imag(a), 'g', -1, 64) + ")"
}

// Sqrt implements [Sqrter].
// It returns the principal square root.
func (ComplexBackend) Sqrt(a complex128) (complex128, error) {
	return cmplx.Sqrt(a), nil
}

// Pow implements [Power].
func (ComplexBackend) Pow(a complex128, n int) complex128 {
	r := complex128(1)
	for ; n > 0; n-- {
		r *= a
	}
	return r
}
