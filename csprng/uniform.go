// Package csprng implements a seedable uniform sampler,
// used to draw random coefficients and random polynomials.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng.
//
// UniformSampler is not safe for concurrent use.
type UniformSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler seeded from crypto/rand.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
// Two samplers with the same seed produce the same stream.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// NewUniformSamplerWithUint64 creates a new UniformSampler seeded by an integer.
func NewUniformSamplerWithUint64(seed uint64) *UniformSampler {
	return NewUniformSamplerWithSeed(binary.LittleEndian.AppendUint64(nil, seed))
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if s.ptr == bufSize {
			s.refill()
		}
		k := copy(p[n:], s.buf[s.ptr:])
		s.ptr += k
		n += k
	}
	return n, nil
}

func (s *UniformSampler) refill() {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	s.ptr = 0
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr+8 > bufSize {
		s.refill()
	}

	res := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *UniformSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleRange uniformly samples a random integer in [lo, hi].
func (s *UniformSampler) SampleRange(lo, hi int64) int64 {
	return lo + int64(s.SampleN(uint64(hi-lo)+1))
}

// SampleBig uniformly samples a random integer in [0, N).
// N must be positive.
func (s *UniformSampler) SampleBig(N *big.Int) *big.Int {
	bitLen := N.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> (8*len(buf) - bitLen))

	res := big.NewInt(0)
	for {
		s.Read(buf)
		buf[0] &= mask
		if res.SetBytes(buf).Cmp(N) < 0 {
			return res
		}
	}
}
