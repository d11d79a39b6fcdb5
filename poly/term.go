package poly

// Term is a monomial c * X^e.
// The exponent of a Term never changes once created.
type Term[T any] struct {
	exponent    int
	coefficient T
}

// NewTerm creates a new Term c * X^e.
func NewTerm[T any](coefficient T, exponent int) Term[T] {
	return Term[T]{
		exponent:    exponent,
		coefficient: coefficient,
	}
}

// Exponent returns the exponent of the Term.
func (t Term[T]) Exponent() int {
	return t.exponent
}

// Coefficient returns the coefficient of the Term.
func (t Term[T]) Coefficient() T {
	return t.coefficient
}
