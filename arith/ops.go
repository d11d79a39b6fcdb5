package arith

// Ops is the resolved operation set of a coefficient type T.
// It is built once per type by [Resolve] and never mutated afterwards,
// so it is safe for concurrent use.
//
// The constants returned by Zero, One, MinusOne and Two are shared.
// Callers must not mutate them.
type Ops[T any] struct {
	name    string
	isField bool

	zero     T
	one      T
	minusOne T
	two      T

	fromInt64 func(int64) T
	add       func(a, b T) T
	sub       func(a, b T) T
	mul       func(a, b T) T
	quo       func(a, b T) T
	quoRem    func(a, b T) (T, T)
	neg       func(T) T
	abs       func(T) T
	trunc     func(T) T
	cmp       func(a, b T) int
	parse     func(string) (T, error)
	format    func(T) string

	mod   func(a, m T) (T, error)
	sqrt  func(T) (T, error)
	log   func(T, float64) (float64, error)
	bytes func(T) ([]byte, error)
	pow   func(T, int) T
}

// Name returns the name of the coefficient type.
func (o *Ops[T]) Name() string {
	return o.name
}

// IsField reports whether every nonzero element of T is invertible.
func (o *Ops[T]) IsField() bool {
	return o.isField
}

// Zero returns 0.
func (o *Ops[T]) Zero() T {
	return o.zero
}

// One returns 1.
func (o *Ops[T]) One() T {
	return o.one
}

// MinusOne returns -1.
func (o *Ops[T]) MinusOne() T {
	return o.minusOne
}

// Two returns 2.
func (o *Ops[T]) Two() T {
	return o.two
}

// FromInt64 converts x to T.
func (o *Ops[T]) FromInt64(x int64) T {
	return o.fromInt64(x)
}

// Add returns a + b.
func (o *Ops[T]) Add(a, b T) T {
	return o.add(a, b)
}

// Sub returns a - b.
func (o *Ops[T]) Sub(a, b T) T {
	return o.sub(a, b)
}

// Mul returns a * b.
func (o *Ops[T]) Mul(a, b T) T {
	return o.mul(a, b)
}

// Div returns a / b.
// Panics with a DivideByZero *Error if b is zero.
func (o *Ops[T]) Div(a, b T) T {
	if o.IsZero(b) {
		panic(Errorf(KindDivideByZero, "Div", "division of %s by zero", o.format(a)))
	}
	return o.quo(a, b)
}

// DivRem returns the quotient and remainder of a / b.
// Panics with a DivideByZero *Error if b is zero.
func (o *Ops[T]) DivRem(a, b T) (T, T) {
	if o.IsZero(b) {
		panic(Errorf(KindDivideByZero, "DivRem", "division of %s by zero", o.format(a)))
	}
	return o.quoRem(a, b)
}

// Mod returns a mod m in [0, |m|).
func (o *Ops[T]) Mod(a, m T) (T, error) {
	if o.IsZero(m) {
		return o.zero, Errorf(KindDivideByZero, "Mod", "zero modulus")
	}
	return o.mod(a, m)
}

// Pow returns a^n.
func (o *Ops[T]) Pow(a T, n int) (T, error) {
	if n < 0 {
		return o.zero, Errorf(KindUnsupported, "Pow", "negative exponent %d", n)
	}
	return o.pow(a, n), nil
}

// Negate returns -a.
func (o *Ops[T]) Negate(a T) T {
	return o.neg(a)
}

// Abs returns |a|.
func (o *Ops[T]) Abs(a T) T {
	return o.abs(a)
}

// Truncate returns a rounded toward zero.
func (o *Ops[T]) Truncate(a T) T {
	return o.trunc(a)
}

// Cmp returns -1, 0 or 1 if a < b, a == b or a > b.
func (o *Ops[T]) Cmp(a, b T) int {
	return o.cmp(a, b)
}

// Equal reports whether a == b.
func (o *Ops[T]) Equal(a, b T) bool {
	return o.cmp(a, b) == 0
}

// LessThan reports whether a < b.
func (o *Ops[T]) LessThan(a, b T) bool {
	return o.cmp(a, b) < 0
}

// GreaterThan reports whether a > b.
func (o *Ops[T]) GreaterThan(a, b T) bool {
	return o.cmp(a, b) > 0
}

// IsZero reports whether a == 0.
func (o *Ops[T]) IsZero(a T) bool {
	return o.cmp(a, o.zero) == 0
}

// IsOne reports whether a == 1.
func (o *Ops[T]) IsOne(a T) bool {
	return o.cmp(a, o.one) == 0
}

// Sqrt returns the square root of a.
func (o *Ops[T]) Sqrt(a T) (T, error) {
	return o.sqrt(a)
}

// Log returns the logarithm of a in the given base.
func (o *Ops[T]) Log(a T, base float64) (float64, error) {
	return o.log(a, base)
}

// Bytes returns the byte encoding of a.
func (o *Ops[T]) Bytes(a T) ([]byte, error) {
	return o.bytes(a)
}

// Parse parses a coefficient literal.
func (o *Ops[T]) Parse(s string) (T, error) {
	x, err := o.parse(s)
	if err != nil {
		return o.zero, Wrap(KindFormat, "Parse", err)
	}
	return x, nil
}

// Format formats a coefficient.
func (o *Ops[T]) Format(a T) string {
	return o.format(a)
}
