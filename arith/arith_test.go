package arith_test

import (
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/sp301415/ringo-algebra/arith"
)

type unregistered struct{}

func TestResolve(t *testing.T) {
	t.Run("SameOps", func(t *testing.T) {
		const workers = 32

		var wg sync.WaitGroup
		results := make([]*arith.Ops[*big.Int], workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = arith.MustResolve[*big.Int]()
			}(i)
		}
		wg.Wait()

		for i := 1; i < workers; i++ {
			assert.Same(t, results[0], results[i])
		}
	})

	t.Run("Unregistered", func(t *testing.T) {
		assert.False(t, arith.Registered[unregistered]())

		_, err := arith.Resolve[unregistered]()
		assert.ErrorIs(t, err, arith.ErrUnsupported)
		assert.Panics(t, func() { arith.MustResolve[unregistered]() })
	})

	t.Run("DuplicateRegister", func(t *testing.T) {
		assert.Panics(t, func() { arith.Register[*big.Int](arith.BigIntBackend{}) })
	})

	t.Run("Constants", func(t *testing.T) {
		o := arith.MustResolve[*big.Int]()
		assert.Equal(t, int64(-1), o.MinusOne().Int64())
		assert.Equal(t, int64(0), o.Zero().Int64())
		assert.Equal(t, int64(1), o.One().Int64())
		assert.Equal(t, int64(2), o.Two().Int64())

		u := arith.MustResolve[uint128.Uint128]()
		assert.Equal(t, uint128.Max, u.MinusOne())
	})
}

func TestUnsupported(t *testing.T) {
	t.Run("ComplexMod", func(t *testing.T) {
		o := arith.MustResolve[complex128]()
		_, err := o.Mod(complex(3, 1), complex(2, 0))
		assert.ErrorIs(t, err, arith.ErrUnsupported)

		_, err = o.Log(complex(3, 1), 10)
		assert.ErrorIs(t, err, arith.ErrUnsupported)
	})

	t.Run("FrMod", func(t *testing.T) {
		o := arith.MustResolve[fr.Element]()
		_, err := o.Mod(o.FromInt64(7), o.FromInt64(3))
		assert.ErrorIs(t, err, arith.ErrUnsupported)
	})

	t.Run("RatBytes", func(t *testing.T) {
		o := arith.MustResolve[*big.Rat]()
		_, err := o.Bytes(big.NewRat(1, 2))
		assert.ErrorIs(t, err, arith.ErrUnsupported)
	})

	t.Run("NegativePow", func(t *testing.T) {
		o := arith.MustResolve[int64]()
		_, err := o.Pow(2, -1)
		assert.ErrorIs(t, err, arith.ErrUnsupported)
		assert.Equal(t, arith.KindUnsupported, arith.KindOf(err))
	})
}

func TestDivideByZero(t *testing.T) {
	o := arith.MustResolve[*big.Int]()

	_, err := o.Mod(big.NewInt(5), big.NewInt(0))
	assert.ErrorIs(t, err, arith.ErrDivideByZero)

	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, arith.ErrDivideByZero)
		}()
		o.Div(big.NewInt(5), big.NewInt(0))
	}()
}

func TestMod(t *testing.T) {
	t.Run("BigInt", func(t *testing.T) {
		o := arith.MustResolve[*big.Int]()
		r, err := o.Mod(big.NewInt(-7), big.NewInt(5))
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.Int64())
	})

	t.Run("Int64", func(t *testing.T) {
		o := arith.MustResolve[int64]()
		for _, tc := range []struct{ a, m, want int64 }{
			{7, 5, 2},
			{-7, 5, 3},
			{-7, -5, 3},
			{0, 5, 0},
		} {
			r, err := o.Mod(tc.a, tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r, "%d mod %d", tc.a, tc.m)
		}
	})

	t.Run("Float64", func(t *testing.T) {
		o := arith.MustResolve[float64]()
		r, err := o.Mod(-7.5, 5)
		require.NoError(t, err)
		assert.Equal(t, 2.5, r)
	})
}

func TestSqrt(t *testing.T) {
	t.Run("Fallback", func(t *testing.T) {
		o := arith.MustResolve[int64]()
		for _, tc := range []struct{ a, want int64 }{
			{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {99, 9}, {100, 10}, {1 << 62, 1 << 31},
		} {
			r, err := o.Sqrt(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r, "sqrt(%d)", tc.a)
		}

		_, err := o.Sqrt(-4)
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)
	})

	t.Run("Uint128", func(t *testing.T) {
		o := arith.MustResolve[uint128.Uint128]()
		x := uint128.From64(1 << 40).Mul(uint128.From64(1 << 40))
		r, err := o.Sqrt(x)
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(1<<40), r)
	})

	t.Run("BigInt", func(t *testing.T) {
		o := arith.MustResolve[*big.Int]()
		_, err := o.Sqrt(big.NewInt(-1))
		assert.ErrorIs(t, err, arith.ErrInvalidArgument)
	})

	t.Run("FrNonResidue", func(t *testing.T) {
		o := arith.MustResolve[fr.Element]()

		// 5 generates the multiplicative group of the BN254 scalar field.
		_, err := o.Sqrt(o.FromInt64(5))
		assert.ErrorIs(t, err, arith.ErrArithmetic)

		r, err := o.Sqrt(o.FromInt64(49))
		require.NoError(t, err)
		assert.True(t, o.Equal(o.Mul(r, r), o.FromInt64(49)))
	})
}

func TestParseFormat(t *testing.T) {
	t.Run("Complex", func(t *testing.T) {
		o := arith.MustResolve[complex128]()

		c, err := o.Parse("(1.5, -2)")
		require.NoError(t, err)
		assert.Equal(t, complex(1.5, -2), c)

		c, err = o.Parse(o.Format(complex(-3, 0.25)))
		require.NoError(t, err)
		assert.Equal(t, complex(-3, 0.25), c)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := arith.MustResolve[*big.Int]().Parse("12a")
		assert.ErrorIs(t, err, arith.ErrFormat)

		_, err = arith.MustResolve[*big.Rat]().Parse("1/0")
		assert.ErrorIs(t, err, arith.ErrFormat)
	})
}

func TestLog(t *testing.T) {
	o := arith.MustResolve[*big.Int]()

	x, _ := big.NewInt(0).SetString("1"+strings.Repeat("0", 41), 10)
	l, err := o.Log(x, 10)
	require.NoError(t, err)
	assert.InDelta(t, 41, l, 1e-9)

	_, err = o.Log(big.NewInt(0), 10)
	assert.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestRingAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	o := arith.MustResolve[*big.Int]()
	u := arith.MustResolve[uint128.Uint128]()

	properties.Property("DivRem", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			q, r := o.DivRem(big.NewInt(a), big.NewInt(b))
			return o.Equal(o.Add(o.Mul(q, big.NewInt(b)), r), big.NewInt(a))
		},
		gen.Int64Range(-1<<40, 1<<40), gen.Int64Range(-1<<20, 1<<20),
	))

	properties.Property("Pow", prop.ForAll(
		func(a int64, n int) bool {
			p, err := o.Pow(big.NewInt(a), n)
			return err == nil && p.Cmp(big.NewInt(0).Exp(big.NewInt(a), big.NewInt(int64(n)), nil)) == 0
		},
		gen.Int64Range(-1000, 1000), gen.IntRange(0, 20),
	))

	properties.Property("Uint128Wrap", prop.ForAll(
		func(a uint64) bool {
			x := uint128.From64(a)
			return u.IsZero(u.Add(x, u.Negate(x)))
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
