// Package genetic - mutation operators.
//
// Both operators rearrange a sequence in place and keep it a permutation.
// Neither recomputes fitness: Mutate marks the Tour stale and the caller
// must Evaluate it before it re-enters a Population.
package genetic

import "fmt"

// SwapMutation exchanges the cities at two uniform positions in [0, n).
// The positions may coincide, which leaves seq unchanged.
//
// Complexity: O(1).
func SwapMutation(seq []int, rng Rand) {
	var n = len(seq)
	if n == 0 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	seq[i], seq[j] = seq[j], seq[i]
}

// DisplacementMutation moves a contiguous block to a new position.
// start is uniform in [0, n), size uniform in [0, n-start) (the block never
// wraps and may be empty), insert uniform in [0, n-size].
//
// Complexity: O(n).
func DisplacementMutation(seq []int, rng Rand) {
	var n = len(seq)
	if n == 0 {
		return
	}
	start := rng.Intn(n)
	size := rng.Intn(n - start)
	insert := rng.Intn(n - size + 1)
	// Ranges are valid by construction.
	_ = Displace(seq, start, size, insert)
}

// Displace removes seq[start:start+size] and splices it back, as one
// block, at position insert of the remaining n-size cities. size == 0 is
// a no-op.
//
// Errors: ErrDimensionMismatch (wrapped) when the block or insert position
// is out of range; seq is untouched in that case.
//
// Complexity: O(n) time, O(n) space.
func Displace(seq []int, start, size, insert int) error {
	var n = len(seq)
	if start < 0 || size < 0 || start+size > n || insert < 0 || insert > n-size {
		return fmt.Errorf("displace start=%d size=%d insert=%d over %d: %w",
			start, size, insert, n, ErrDimensionMismatch)
	}
	if size == 0 {
		return nil
	}

	var (
		block = append([]int(nil), seq[start:start+size]...)
		rest  = make([]int, 0, n-size)
	)
	rest = append(rest, seq[:start]...)
	rest = append(rest, seq[start+size:]...)

	copy(seq, rest[:insert])
	copy(seq[insert:], block)
	copy(seq[insert+size:], rest[insert:])

	return nil
}

// Mutate applies exactly one operator to t: SwapMutation when a uniform
// draw is > 0.5, DisplacementMutation otherwise. t becomes stale.
func Mutate(t *Tour, rng Rand) {
	if rng.Float64() > 0.5 {
		SwapMutation(t.seq, rng)
	} else {
		DisplacementMutation(t.seq, rng)
	}
	t.stale = true
}

// MutateAll applies Mutate to every Tour, in order.
func MutateAll(tours []*Tour, rng Rand) {
	for _, t := range tours {
		Mutate(t, rng)
	}
}
