package arith

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func init() {
	Register[fr.Element](FrBackend{})
}

// FrBackend is the backend of fr.Element, the scalar field of BN254.
// Cmp compares canonical representatives in [0, r). Mod is unsupported.
type FrBackend struct{}

// IsField implements [Fielder].
func (FrBackend) IsField() bool { return true }

// Zero implements [Backend].
func (FrBackend) Zero() fr.Element { return fr.Element{} }

// One implements [Backend].
func (FrBackend) One() fr.Element { return fr.One() }

// FromInt64 implements [Backend].
func (FrBackend) FromInt64(x int64) fr.Element {
	var z fr.Element
	z.SetInt64(x)
	return z
}

// Add implements [Backend].
func (FrBackend) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)
	return z
}

// Sub implements [Backend].
func (FrBackend) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)
	return z
}

// Mul implements [Backend].
func (FrBackend) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)
	return z
}

// Quo implements [Backend].
func (FrBackend) Quo(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Div(&a, &b)
	return z
}

// QuoRem implements [Backend].
func (f FrBackend) QuoRem(a, b fr.Element) (fr.Element, fr.Element) {
	return f.Quo(a, b), fr.Element{}
}

// Neg implements [Backend].
func (FrBackend) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)
	return z
}

// Abs implements [Backend].
func (FrBackend) Abs(a fr.Element) fr.Element { return a }

// Trunc implements [Backend].
func (FrBackend) Trunc(a fr.Element) fr.Element { return a }

// Cmp implements [Backend].
func (FrBackend) Cmp(a, b fr.Element) int { return a.Cmp(&b) }

// Parse implements [Backend].
func (FrBackend) Parse(s string) (fr.Element, error) {
	var z fr.Element
	_, err := z.SetString(s)
	return z, err
}

// Format implements [Backend].
func (FrBackend) Format(a fr.Element) string { return a.String() }

// Sqrt implements [Sqrter].
func (FrBackend) Sqrt(a fr.Element) (fr.Element, error) {
	var z fr.Element
	if z.Sqrt(&a) == nil {
		return fr.Element{}, Errorf(KindArithmetic, "Sqrt", "%v is not a quadratic residue", a.String())
	}
	return z, nil
}

// Bytes implements [Byter].
// The encoding is 32 bytes, big-endian.
func (FrBackend) Bytes(a fr.Element) []byte {
	b := a.Bytes()
	return b[:]
}

// Pow implements [Power].
func (FrBackend) Pow(a fr.Element, n int) fr.Element {
	var z fr.Element
	z.Exp(a, big.NewInt(int64(n)))
	return z
}
