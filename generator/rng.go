package generator

import (
	"math/rand/v2"
)

// Stream is a PCG random stream whose position can be saved and restored.
// Not safe for concurrent use; a Sweeper draws from it before fanning out.
type Stream struct {
	*rand.Rand
	src *rand.PCG
}

// NewStream seeds a stream. Seed 0 draws a seed from the runtime source.
// Complexity: O(1).
func NewStream(seed uint64) *Stream {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	src := rand.NewPCG(seed, DeriveSeed(seed, 0))
	return &Stream{Rand: rand.New(src), src: src}
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer.
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// MarshalBinary captures the stream position.
func (s *Stream) MarshalBinary() ([]byte, error) {
	return s.src.MarshalBinary()
}

// UnmarshalBinary restores a position captured by MarshalBinary.
func (s *Stream) UnmarshalBinary(data []byte) error {
	return s.src.UnmarshalBinary(data)
}

// Sign returns ±1 with equal probability.
func (s *Stream) Sign() int {
	if s.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Nonzero returns a uniform integer from {−k, …, −1, 1, …, k}.
func (s *Stream) Nonzero(k int) int {
	c := s.IntN(2*k) - k
	if c >= 0 {
		c++
	}
	return c
}

// Uniform returns a float uniform in [lo, hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}
