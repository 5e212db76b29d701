package testutil

import (
	"math/rand"
	"sort"
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

// FillWords fills dst with uniformly random words.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (r *RNG) FillWords(dst []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint64()
	}
}

// SparseWords fills dst with words where each bit is set with probability
// 1/2^shift. shift = 0 yields uniform words.
func (r *RNG) SparseWords(dst []uint64, shift int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		w := r.rand.Uint64()
		for range shift {
			w &= r.rand.Uint64()
		}
		dst[i] = w
	}
}

// Positions returns k distinct bit positions in [0, limit), sorted ascending.
// If k >= limit every position is returned.
func (r *RNG) Positions(k, limit int) []int {
	if k >= limit {
		out := make([]int, limit)
		for i := range out {
			out[i] = i
		}
		return out
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		p := r.rand.Intn(limit)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
