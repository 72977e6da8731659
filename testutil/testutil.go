package testutil

import (
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
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Values returns n values uniformly drawn from [0, bound).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Values(n, bound int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(bound)
	}
	return out
}

// SmallAlphabet returns n values drawn from [0, k) with k much smaller
// than bound, which makes repeated subsequences and overlaps likely.
func (r *RNG) SmallAlphabet(n, k int) []int {
	return r.Values(n, k)
}

// Bound returns a random bound in [1, maxBound].
func (r *RNG) Bound(maxBound int) int {
	return r.Intn(maxBound) + 1
}

// SliceArgs returns random start, stop and step arguments for a
// sequence of the given length, including out-of-range and negative
// values. step is never zero.
func (r *RNG) SliceArgs(length int) (start, stop, step int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := 2*length + 4
	start = r.rand.Intn(span) - length - 2
	stop = r.rand.Intn(span) - length - 2
	for step == 0 {
		step = r.rand.Intn(9) - 4
	}
	return start, stop, step
}

// Ints mirrors Python slice semantics on a plain slice. omit marks an
// absent start or stop. It is the reference model for slicing tests.
func Ints(xs []int, start, stop, step, omit int) []int {
	n := len(xs)
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	norm := func(i, def int) int {
		if i == omit {
			return def
		}
		if i < 0 {
			i += n
			if i < lower {
				i = lower
			}
			return i
		}
		if i > upper {
			i = upper
		}
		return i
	}
	out := []int{}
	if step > 0 {
		for i := norm(start, lower); i < norm(stop, upper); i += step {
			out = append(out, xs[i])
		}
		return out
	}
	for i := norm(start, upper); i > norm(stop, lower); i += step {
		out = append(out, xs[i])
	}
	return out
}
