package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillSparse fills buf with 0/1 values. Each cell draws a uniform integer in
// [0, sparseness] and becomes 1 iff the draw is zero, so the expected live
// fraction is 1/(sparseness+1). A sparseness of zero fills the buffer with
// ones.
func FillSparse(r *RNG, buf []uint8, sparseness int) {
	if sparseness < 0 {
		sparseness = 0
	}
	for i := range buf {
		if r.r.IntN(sparseness+1) == 0 {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}
