package arith

import (
	"reflect"
	"sync"

	log "github.com/sirupsen/logrus"
)

type resolution struct {
	once sync.Once
	ops  any
}

var (
	// backends maps reflect.Type to Backend[T].
	backends sync.Map
	// resolved maps reflect.Type to *resolution.
	resolved sync.Map
)

// Register registers the backend of T.
// It is meant to be called from an init function.
//
// Panics if T already has a backend.
func Register[T any](b Backend[T]) {
	key := reflect.TypeFor[T]()
	if _, loaded := backends.LoadOrStore(key, b); loaded {
		panic("backend for " + key.String() + " already registered")
	}
}

// Registered reports whether T has a backend.
func Registered[T any]() bool {
	_, ok := backends.Load(reflect.TypeFor[T]())
	return ok
}

// Resolve returns the operation set of T.
// The operation set is computed once per type, on first use,
// and every later call returns the same pointer.
// Concurrent first calls block until the single resolution completes.
func Resolve[T any]() (*Ops[T], error) {
	key := reflect.TypeFor[T]()

	b, ok := backends.Load(key)
	if !ok {
		return nil, Errorf(KindUnsupported, "Resolve", "no backend registered for %v", key)
	}

	v, _ := resolved.LoadOrStore(key, &resolution{})
	r := v.(*resolution)
	r.once.Do(func() {
		r.ops = bind(key.String(), b.(Backend[T]))
		log.Debugf("resolved numeric operations for %v", key)
	})

	return r.ops.(*Ops[T]), nil
}

// MustResolve is like [Resolve], but panics if T has no backend.
func MustResolve[T any]() *Ops[T] {
	ops, err := Resolve[T]()
	if err != nil {
		panic(err)
	}
	return ops
}

// bind builds the operation set of a backend,
// falling back to generic implementations for missing capabilities.
func bind[T any](name string, b Backend[T]) *Ops[T] {
	o := &Ops[T]{
		name: name,

		zero: b.Zero(),
		one:  b.One(),

		fromInt64: b.FromInt64,
		add:       b.Add,
		sub:       b.Sub,
		mul:       b.Mul,
		quo:       b.Quo,
		quoRem:    b.QuoRem,
		neg:       b.Neg,
		abs:       b.Abs,
		trunc:     b.Trunc,
		cmp:       b.Cmp,
		parse:     b.Parse,
		format:    b.Format,
	}
	o.minusOne = b.Neg(o.one)
	o.two = b.Add(o.one, o.one)

	if f, ok := b.(Fielder); ok {
		o.isField = f.IsField()
	}

	switch m := any(b).(type) {
	case Moder[T]:
		o.mod = m.Mod
	default:
		if o.isField {
			o.mod = func(a, _ T) (T, error) {
				return o.zero, Errorf(KindUnsupported, "Mod", "%s has no residues", name)
			}
		} else {
			o.mod = o.remainderMod
		}
	}

	switch s := any(b).(type) {
	case Sqrter[T]:
		o.sqrt = s.Sqrt
	default:
		o.sqrt = o.bisectSqrt
	}

	switch l := any(b).(type) {
	case Logger[T]:
		o.log = l.Log
	default:
		o.log = func(T, float64) (float64, error) {
			return 0, Errorf(KindUnsupported, "Log", "%s has no logarithm", name)
		}
	}

	switch e := any(b).(type) {
	case Byter[T]:
		o.bytes = func(a T) ([]byte, error) { return e.Bytes(a), nil }
	default:
		o.bytes = func(T) ([]byte, error) {
			return nil, Errorf(KindUnsupported, "Bytes", "%s has no byte encoding", name)
		}
	}

	switch p := any(b).(type) {
	case Power[T]:
		o.pow = p.Pow
	default:
		o.pow = o.squareAndMultiply
	}

	return o
}

// remainderMod derives a residue from QuoRem:
// the truncated remainder, shifted by |m| if negative.
func (o *Ops[T]) remainderMod(a, m T) (T, error) {
	_, r := o.quoRem(a, m)
	if o.LessThan(r, o.zero) {
		r = o.add(r, o.abs(m))
	}
	return r, nil
}

// bisectSqrt is the generic square root for backends without a native one.
// It returns the largest r found by bisection with r * r <= a,
// which is the integer square root on integer backends.
func (o *Ops[T]) bisectSqrt(a T) (T, error) {
	if o.LessThan(a, o.zero) {
		return o.zero, Errorf(KindInvalidArgument, "Sqrt", "negative operand %s", o.format(a))
	}

	lo, hi := o.zero, a
	if o.LessThan(hi, o.one) {
		hi = o.one
	}

	// Invariant: lo * lo <= a. Comparisons divide instead of squaring to avoid overflow.
	for o.GreaterThan(o.sub(hi, lo), o.one) {
		mid := o.add(lo, o.quo(o.sub(hi, lo), o.two))
		if o.GreaterThan(mid, o.quo(a, mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}

	if !o.GreaterThan(hi, o.quo(a, hi)) {
		return hi, nil
	}
	return lo, nil
}

func (o *Ops[T]) squareAndMultiply(a T, n int) T {
	r := o.one
	for n > 0 {
		if n&1 == 1 {
			r = o.mul(r, a)
		}
		n >>= 1
		if n > 0 {
			a = o.mul(a, a)
		}
	}
	return r
}
