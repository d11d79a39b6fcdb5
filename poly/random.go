package poly

import (
	log "github.com/sirupsen/logrus"

	"github.com/sp301415/ringo-algebra/arith"
	"github.com/sp301415/ringo-algebra/csprng"
)

// Random returns a random polynomial of exactly the given degree,
// with coefficients sampled uniformly from [-bound, bound].
func Random[T any](degree int, bound int64, s *csprng.UniformSampler) (*Polynomial[T], error) {
	o, err := arith.Resolve[T]()
	if err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "Random", "negative degree %d", degree)
	}
	if bound <= 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "Random", "bound %d is not positive", bound)
	}

	terms := make([]Term[T], 0, degree+1)
	for i := 0; i < degree; i++ {
		terms = append(terms, NewTerm(o.FromInt64(s.SampleRange(-bound, bound)), i))
	}

	lead := int64(0)
	for lead == 0 {
		lead = s.SampleRange(-bound, bound)
	}
	terms = append(terms, NewTerm(o.FromInt64(lead), degree))

	return newSorted(o, terms), nil
}

// RandomMonicMod returns a random monic polynomial of the given degree,
// with lower coefficients sampled uniformly from [0, p).
func RandomMonicMod[T any](degree int, p T, s *csprng.UniformSampler) (*Polynomial[T], error) {
	o, err := arith.Resolve[T]()
	if err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "RandomMonicMod", "negative degree %d", degree)
	}

	pBig, err := toBigInt(o, p)
	if err != nil {
		return nil, err
	}
	if pBig.Sign() <= 0 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "RandomMonicMod", "modulus %v is not positive", pBig)
	}

	terms := make([]Term[T], 0, degree+1)
	for i := 0; i < degree; i++ {
		c, err := o.Parse(s.SampleBig(pBig).String())
		if err != nil {
			return nil, err
		}
		terms = append(terms, NewTerm(c, i))
	}
	terms = append(terms, NewTerm(o.One(), degree))

	return newSorted(o, terms), nil
}

// FindIrreducible samples random monic polynomials of the given degree over Z_p[X]
// until one passes [IsIrreducibleRabin], giving up after attempts tries.
// About one in every degree samples is irreducible.
func FindIrreducible[T any](degree int, p T, s *csprng.UniformSampler, attempts int) (*Polynomial[T], error) {
	if degree < 1 {
		return nil, arith.Errorf(arith.KindInvalidArgument, "FindIrreducible", "degree %d is less than one", degree)
	}

	for i := 0; i < attempts; i++ {
		f, err := RandomMonicMod(degree, p, s)
		if err != nil {
			return nil, err
		}

		ok, err := IsIrreducibleRabin(f, p)
		if err != nil {
			return nil, err
		}
		log.Debugf("FindIrreducible: attempt %d: %v irreducible = %v", i+1, f, ok)
		if ok {
			return f, nil
		}
	}

	return nil, arith.Errorf(arith.KindArithmetic, "FindIrreducible", "no irreducible polynomial of degree %d found in %d attempts", degree, attempts)
}
