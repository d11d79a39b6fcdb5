package main

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"lukechampine.com/uint128"

	"github.com/sp301415/ringo-algebra/arith"
	"github.com/sp301415/ringo-algebra/csprng"
	"github.com/sp301415/ringo-algebra/poly"
)

// engine runs polynomial operations on text, for a backend chosen at runtime.
type engine interface {
	eval(p, x string) (string, error)
	binary(op, p, q string) (string, error)
	divide(p, q string) (quo, rem string, err error)
	pow(p string, n int) (string, error)
	derivative(p string) (string, error)
	fromBase(value, base string, degree int) (string, error)
	modPow(p string, n int, q string) (string, error)
	expMod(p, e, q, m string) (string, error)
	irreducible(f, p string, rabin bool) (bool, error)
	findIrreducible(degree int, p string, s *csprng.UniformSampler, attempts int) (string, error)
}

// newEngine returns the engine of the named backend.
func newEngine(backend string) (engine, error) {
	switch backend {
	case "bigint":
		return newEngineOf[*big.Int]()
	case "rat":
		return newEngineOf[*big.Rat]()
	case "float":
		return newEngineOf[*big.Float]()
	case "float64":
		return newEngineOf[float64]()
	case "complex":
		return newEngineOf[complex128]()
	case "int64":
		return newEngineOf[int64]()
	case "uint128":
		return newEngineOf[uint128.Uint128]()
	case "fr":
		return newEngineOf[fr.Element]()
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

type engineOf[T any] struct {
	ops *arith.Ops[T]
}

func newEngineOf[T any]() (engine, error) {
	o, err := arith.Resolve[T]()
	if err != nil {
		return nil, err
	}
	return engineOf[T]{ops: o}, nil
}

func (e engineOf[T]) parsePair(p, q string) (*poly.Polynomial[T], *poly.Polynomial[T], error) {
	pp, err := poly.Parse[T](p)
	if err != nil {
		return nil, nil, err
	}
	qq, err := poly.Parse[T](q)
	if err != nil {
		return nil, nil, err
	}
	return pp, qq, nil
}

func (e engineOf[T]) eval(p, x string) (string, error) {
	pp, err := poly.Parse[T](p)
	if err != nil {
		return "", err
	}
	xx, err := e.ops.Parse(x)
	if err != nil {
		return "", err
	}
	return e.ops.Format(pp.Evaluate(xx)), nil
}

func (e engineOf[T]) binary(op, p, q string) (string, error) {
	pp, qq, err := e.parsePair(p, q)
	if err != nil {
		return "", err
	}

	switch op {
	case "add":
		return pp.Add(qq).String(), nil
	case "sub":
		return pp.Sub(qq).String(), nil
	case "mul":
		return pp.Mul(qq).String(), nil
	case "gcd":
		return poly.GCD(pp, qq).String(), nil
	}
	return "", fmt.Errorf("unknown operation %q", op)
}

func (e engineOf[T]) divide(p, q string) (string, string, error) {
	pp, qq, err := e.parsePair(p, q)
	if err != nil {
		return "", "", err
	}

	quo, rem, err := pp.Divide(qq)
	if err != nil {
		return "", "", err
	}
	return quo.String(), rem.String(), nil
}

func (e engineOf[T]) pow(p string, n int) (string, error) {
	pp, err := poly.Parse[T](p)
	if err != nil {
		return "", err
	}

	r, err := pp.Pow(n)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (e engineOf[T]) derivative(p string) (string, error) {
	pp, err := poly.Parse[T](p)
	if err != nil {
		return "", err
	}
	return pp.Derivative().String(), nil
}

func (e engineOf[T]) fromBase(value, base string, degree int) (string, error) {
	v, err := e.ops.Parse(value)
	if err != nil {
		return "", err
	}
	b, err := e.ops.Parse(base)
	if err != nil {
		return "", err
	}

	r, err := poly.FromBase(v, b, degree)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (e engineOf[T]) modPow(p string, n int, q string) (string, error) {
	pp, qq, err := e.parsePair(p, q)
	if err != nil {
		return "", err
	}

	r, err := pp.ModPow(n, qq)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (e engineOf[T]) expMod(p, exp, q, m string) (string, error) {
	pp, qq, err := e.parsePair(p, q)
	if err != nil {
		return "", err
	}
	ee, ok := big.NewInt(0).SetString(exp, 10)
	if !ok {
		return "", arith.Errorf(arith.KindFormat, "expmod", "invalid exponent %q", exp)
	}
	mm, err := e.ops.Parse(m)
	if err != nil {
		return "", err
	}

	r, err := poly.ExponentiateMod(pp, ee, qq, mm)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (e engineOf[T]) irreducible(f, p string, rabin bool) (bool, error) {
	ff, err := poly.Parse[T](f)
	if err != nil {
		return false, err
	}
	pp, err := e.ops.Parse(p)
	if err != nil {
		return false, err
	}

	if rabin {
		return poly.IsIrreducibleRabin(ff, pp)
	}
	return poly.IsIrreducibleOverField(ff, pp)
}

func (e engineOf[T]) findIrreducible(degree int, p string, s *csprng.UniformSampler, attempts int) (string, error) {
	pp, err := e.ops.Parse(p)
	if err != nil {
		return "", err
	}

	f, err := poly.FindIrreducible(degree, pp, s, attempts)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}
