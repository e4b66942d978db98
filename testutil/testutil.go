package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with, for failure reporting.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a uniformly random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64s returns n operands: the usual suspects first (zero, one, the
// bounds and their neighbours), then uniform random values.
func (r *RNG) Uint64s(n int) []uint64 {
	edges := []uint64{0, 1, 2, math.MaxUint64, math.MaxUint64 - 1, 1 << 63, 1<<63 - 1, 1<<32 - 1, 1 << 32}
	out := make([]uint64, 0, n)
	for _, e := range edges {
		if len(out) == n {
			return out
		}
		out = append(out, e)
	}
	for len(out) < n {
		out = append(out, r.Uint64())
	}
	return out
}

// Int64s returns n operands: boundary values first, then uniform random
// values across the full signed range.
func (r *RNG) Int64s(n int) []int64 {
	edges := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MinInt64 + 1, math.MaxInt64 - 1}
	out := make([]int64, 0, n)
	for _, e := range edges {
		if len(out) == n {
			return out
		}
		out = append(out, e)
	}
	for len(out) < n {
		out = append(out, int64(r.Uint64()))
	}
	return out
}

// Float64s returns n operands spread across the exponent range, with the
// troublemakers (zeros, infinities, NaN, bounds) first.
func (r *RNG) Float64s(n int) []float64 {
	edges := []float64{0, math.Copysign(0, -1), 1, -1, math.MaxFloat64, -math.MaxFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(), math.SmallestNonzeroFloat64}
	out := make([]float64, 0, n)
	for _, e := range edges {
		if len(out) == n {
			return out
		}
		out = append(out, e)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(out) < n {
		// Uniform mantissa with a uniform exponent in [-64, 64) covers the
		// integer-boundary region without drowning in denormals.
		m := r.rand.Float64()*2 - 1
		e := r.rand.Intn(128) - 64
		out = append(out, math.Ldexp(m, e))
	}
	return out
}
