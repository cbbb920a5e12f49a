// Package genetic - random source abstraction.
//
// Every stochastic decision of the engine (shuffles, coin flips, crossover
// cut points, mutation positions) is drawn from a Rand. Tests inject a
// seeded source; production runs may seed from the clock.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The engine only draws from the
//     single-threaded phases of a generation, never from evaluation workers.
package genetic

import (
	"math/rand"
	"time"
)

// Rand is the subset of *math/rand.Rand used by the engine.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n); n must be > 0.
	Intn(n int) int
	// Shuffle permutes n elements uniformly via swap.
	Shuffle(n int, swap func(i, j int))
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a *rand.Rand for seed. seed == 0 derives a seed from the
// wall clock, so consecutive unseeded runs differ.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}

// shuffleInPlace performs a uniform in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng Rand) {
	if len(a) <= 1 {
		return
	}
	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// coin returns true with probability 1/2 using the strict "< 0.5" cut.
func coin(rng Rand) bool { return rng.Float64() < 0.5 }
