package poly_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/sp301415/ringo-algebra/arith"
	"github.com/sp301415/ringo-algebra/csprng"
	"github.com/sp301415/ringo-algebra/poly"
)

func TestModular(t *testing.T) {
	t.Run("Mod", func(t *testing.T) {
		p := mustParse[*big.Int](t, "-7*X^2 + 12*X - 1")
		r, err := p.Mod(big.NewInt(5))
		require.NoError(t, err)
		assert.Equal(t, "3*X^2 + 2*X + 4", r.String())

		r, err = mustParse[*big.Int](t, "10*X + 5").Mod(big.NewInt(5))
		require.NoError(t, err)
		assert.True(t, r.IsZero())

		_, err = p.Mod(big.NewInt(0))
		assert.ErrorIs(t, err, arith.ErrDivideByZero)

		_, err = mustParse[fr.Element](t, "X + 1").Mod(arith.MustResolve[fr.Element]().FromInt64(3))
		assert.ErrorIs(t, err, arith.ErrUnsupported)
	})

	t.Run("ModPoly", func(t *testing.T) {
		p := mustParse[*big.Int](t, "X^3 + 1")

		r, err := p.ModPoly(mustParse[*big.Int](t, "X + 1"))
		require.NoError(t, err)
		assert.True(t, r.IsZero())

		r, err = p.ModPoly(mustParse[*big.Int](t, "X^4"))
		require.NoError(t, err)
		assert.True(t, r.Equal(p))

		_, err = p.ModPoly(poly.Zero[*big.Int]())
		assert.ErrorIs(t, err, arith.ErrDivideByZero)
	})

	t.Run("ModMod", func(t *testing.T) {
		p := mustParse[*big.Int](t, "X^3 + 4*X^2 + 9")
		r, err := poly.ModMod(p, mustParse[*big.Int](t, "X^2 + 1"), big.NewInt(7))
		require.NoError(t, err)
		// X^3 + 4X^2 + 9 = (X + 4)(X^2 + 1) - X + 5.
		assert.Equal(t, "6*X + 5", r.String())
	})

	t.Run("DivideMod", func(t *testing.T) {
		p := mustParse[*big.Int](t, "X^2 + 1")
		q := mustParse[*big.Int](t, "2*X + 1")

		quo, rem, err := poly.DivideMod(p, q, big.NewInt(5))
		require.NoError(t, err)
		assert.Equal(t, "3*X + 1", quo.String())
		assert.True(t, rem.IsZero())

		_, _, err = poly.DivideMod(p, mustParse[*big.Int](t, "5*X"), big.NewInt(5))
		assert.ErrorIs(t, err, arith.ErrDivideByZero)

		_, _, err = poly.DivideMod(p, q, big.NewInt(4))
		assert.ErrorIs(t, err, arith.ErrArithmetic)
	})

	t.Run("MonicMod", func(t *testing.T) {
		r, err := poly.MonicMod(mustParse[*big.Int](t, "3*X^2 + X + 2"), big.NewInt(7))
		require.NoError(t, err)
		// 3^-1 = 5 mod 7.
		assert.Equal(t, "X^2 + 5*X + 3", r.String())
	})

	t.Run("GCDMod", func(t *testing.T) {
		p := mustParse[*big.Int](t, "X^2 - 3*X + 2")
		q := mustParse[*big.Int](t, "X^2 - 4*X + 3")

		g, err := poly.GCDMod(p, q, big.NewInt(7))
		require.NoError(t, err)
		assert.Equal(t, "X + 6", g.String())

		g, err = poly.GCDMod(mustParse[*big.Int](t, "X^2 + 1"), mustParse[*big.Int](t, "X + 1"), big.NewInt(3))
		require.NoError(t, err)
		assert.True(t, g.IsOne())
	})

	t.Run("ModPow", func(t *testing.T) {
		p := mustParse[*big.Int](t, "X + 1")
		q := mustParse[*big.Int](t, "X^2 + 1")

		r, err := p.ModPow(5, q)
		require.NoError(t, err)
		assert.Equal(t, "-4*X - 4", r.String())

		r, err = p.ModPow(0, q)
		require.NoError(t, err)
		assert.True(t, r.IsOne())

		// Small exponents are reduced too.
		r, err = mustParse[*big.Int](t, "X^2 + 3").ModPow(1, q)
		require.NoError(t, err)
		assert.Equal(t, "2", r.String())

		r, err = p.ModPow(0, mustParse[*big.Int](t, "1"))
		require.NoError(t, err)
		assert.True(t, r.IsZero())

		_, err = p.ModPow(-1, q)
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)

		_, err = p.ModPow(3, poly.Zero[*big.Int]())
		assert.ErrorIs(t, err, arith.ErrDivideByZero)
	})

	t.Run("ExponentiateMod", func(t *testing.T) {
		x := mustParse[*big.Int](t, "X")
		f := mustParse[*big.Int](t, "X^2 + X + 1")

		// X^2 + X + 1 is irreducible over Z_2, so X^4 = X in Z_2[X]/(f).
		r, err := poly.ExponentiateMod(x, big.NewInt(4), f, big.NewInt(2))
		require.NoError(t, err)
		assert.Equal(t, "X", r.String())

		r, err = poly.ExponentiateMod(x, big.NewInt(0), f, big.NewInt(2))
		require.NoError(t, err)
		assert.True(t, r.IsOne())

		_, err = poly.ExponentiateMod(x, big.NewInt(-1), f, big.NewInt(2))
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)
	})
}

func TestIrreducible(t *testing.T) {
	for _, tc := range []struct {
		f      string
		p      int64
		simple bool
		rabin  bool
	}{
		{"X^2 + X + 1", 2, true, true},
		{"X^2 + 1", 3, true, true},
		{"X^2 + 1", 5, false, false},
		{"X^3 - 2", 7, true, true},
		{"X^3 - 1", 7, false, false},
		{"X^4 + X + 1", 2, true, true},
		{"X^4 + X^2 + 1", 2, true, false},
		{"2*X + 1", 3, false, true},
		{"5", 7, false, false},
		{"7*X^2 + 3", 7, false, false},
	} {
		t.Run(tc.f, func(t *testing.T) {
			f := mustParse[*big.Int](t, tc.f)

			ok, err := poly.IsIrreducibleOverField(f, big.NewInt(tc.p))
			require.NoError(t, err)
			assert.Equal(t, tc.simple, ok, "simple test mod %d", tc.p)

			ok, err = poly.IsIrreducibleRabin(f, big.NewInt(tc.p))
			require.NoError(t, err)
			assert.Equal(t, tc.rabin, ok, "Rabin test mod %d", tc.p)
		})
	}

	t.Run("Backends", func(t *testing.T) {
		ok, err := poly.IsIrreducibleRabin(mustParse[int64](t, "X^2 + 1"), int64(3))
		require.NoError(t, err)
		assert.True(t, ok)

		// Wrapping arithmetic agrees with Z_p only for p dividing 2^128.
		ok, err = poly.IsIrreducibleRabin(mustParse[uint128.Uint128](t, "X^2 + X + 1"), uint128.From64(2))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = poly.IsIrreducibleOverField(mustParse[uint128.Uint128](t, "X^2 + 1"), uint128.From64(2))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		_, err := poly.IsIrreducibleRabin(mustParse[*big.Rat](t, "X^2 + 1"), big.NewRat(1, 2))
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)

		_, err = poly.IsIrreducibleOverField(mustParse[fr.Element](t, "X^2 + 1"), arith.MustResolve[fr.Element]().FromInt64(3))
		assert.ErrorIs(t, err, arith.ErrUnsupported)
	})
}

func TestFindIrreducible(t *testing.T) {
	t.Run("Seeded", func(t *testing.T) {
		f, err := poly.FindIrreducible(3, big.NewInt(5), csprng.NewUniformSamplerWithUint64(42), 1000)
		require.NoError(t, err)
		g, err := poly.FindIrreducible(3, big.NewInt(5), csprng.NewUniformSamplerWithUint64(42), 1000)
		require.NoError(t, err)

		assert.True(t, f.Equal(g))
		assert.Equal(t, 3, f.Degree())
		assert.True(t, f.LeadingCoefficient().Cmp(big.NewInt(1)) == 0)

		ok, err := poly.IsIrreducibleRabin(f, big.NewInt(5))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Exhausted", func(t *testing.T) {
		_, err := poly.FindIrreducible(3, big.NewInt(5), csprng.NewUniformSampler(), 0)
		assert.ErrorIs(t, err, arith.ErrArithmetic)
	})

	t.Run("InvalidDegree", func(t *testing.T) {
		_, err := poly.FindIrreducible(0, big.NewInt(5), csprng.NewUniformSampler(), 10)
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)
	})
}

func TestModularProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ModPowMatchesRepeatedMul", prop.ForAll(
		func(a []int64, b []int64, lead int64, e int) bool {
			p := poly.NewFromCoefficients(bigRats(a...)...)
			q := poly.NewFromCoefficients(append(bigRats(b...), big.NewRat(lead, 1))...)

			got, err := p.ModPow(e, q)
			if err != nil {
				return false
			}

			want, _ := poly.One[*big.Rat]().ModPoly(q)
			for i := 0; i < e; i++ {
				want, _ = want.Mul(p).ModPoly(q)
			}
			return got.Equal(want)
		},
		gen.SliceOfN(3, gen.Int64Range(-5, 5)),
		gen.SliceOfN(2, gen.Int64Range(-5, 5)),
		gen.Int64Range(1, 5),
		gen.IntRange(0, 6),
	))

	properties.Property("ExponentiateModMatchesModPow", prop.ForAll(
		func(a []int64, e int) bool {
			m := big.NewInt(7)
			p := poly.NewFromCoefficients(bigInts(a...)...)
			f := poly.NewFromCoefficients(bigInts(1, 2, 0, 1)...)

			got, err := poly.ExponentiateMod(p, big.NewInt(int64(e)), f, m)
			if err != nil {
				return false
			}

			want, err := p.ModPow(e, f)
			if err != nil {
				return false
			}
			want, err = want.Mod(m)
			return err == nil && got.Equal(want)
		},
		gen.SliceOfN(3, gen.Int64Range(-10, 10)),
		gen.IntRange(0, 20),
	))

	properties.Property("DivideModIdentity", prop.ForAll(
		func(a []int64, b []int64) bool {
			m := big.NewInt(11)
			p := poly.NewFromCoefficients(bigInts(a...)...)
			q := poly.NewFromCoefficients(append(bigInts(b...), big.NewInt(3))...)

			quo, rem, err := poly.DivideMod(p, q, m)
			if err != nil {
				return false
			}
			if !rem.IsZero() && rem.Degree() >= q.Degree() {
				return false
			}

			lhs, _ := p.Mod(m)
			rhs, _ := quo.Mul(q).Add(rem).Mod(m)
			return lhs.Equal(rhs)
		},
		gen.SliceOfN(6, gen.Int64Range(-50, 50)),
		gen.SliceOfN(2, gen.Int64Range(-50, 50)),
	))

	properties.TestingRun(t)
}
