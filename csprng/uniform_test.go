package csprng_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/ringo-algebra/csprng"
)

func TestUniformSampler(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithUint64(42)
		s1 := csprng.NewUniformSamplerWithUint64(42)
		for i := 0; i < 2000; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}

		s2 := csprng.NewUniformSamplerWithUint64(43)
		assert.NotEqual(t, s0.Sample(), s2.Sample())
	})

	t.Run("Read", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
		s1 := csprng.NewUniformSamplerWithSeed([]byte("seed"))

		b0 := make([]byte, 10000)
		n, err := s0.Read(b0)
		assert.NoError(t, err)
		assert.Equal(t, len(b0), n)

		b1 := make([]byte, 10000)
		s1.Read(b1[:3])
		s1.Read(b1[3:])
		assert.Equal(t, b0, b1)
	})

	t.Run("SampleRange", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		seen := make(map[int64]bool)
		for i := 0; i < 1000; i++ {
			x := s.SampleRange(-3, 3)
			assert.GreaterOrEqual(t, x, int64(-3))
			assert.LessOrEqual(t, x, int64(3))
			seen[x] = true
		}
		assert.Len(t, seen, 7)
	})

	t.Run("SampleBig", func(t *testing.T) {
		s := csprng.NewUniformSampler()
		N := big.NewInt(1000003)
		for i := 0; i < 1000; i++ {
			x := s.SampleBig(N)
			assert.GreaterOrEqual(t, x.Sign(), 0)
			assert.Negative(t, x.Cmp(N))
		}
	})
}
