// Package genetic - order crossover (OX).
//
// For a cut [start, end] (inclusive) each child keeps its own parent's
// segment in place. The remaining slots are filled from the other parent,
// reading it circularly from end+1 for n steps and skipping cities already
// present in the child; each accepted city goes into the next empty slot of
// a second circular cursor that also starts at end+1.
//
// Every city is placed exactly once: the segment holds distinct cities, the
// fill phase admits a city only when absent (presence set, O(1) per check),
// and a full circular read of a permutation visits every city. Children are
// therefore permutations by construction.
package genetic

import (
	"fmt"

	"github.com/katalvlaran/tspga/tsp"
)

// OrderCrossover recombines two parent permutations for a fixed cut and
// returns two fresh children. Parents are not modified.
//
// Contract:
//   - p1 and p2 are permutations of {0..n-1} with n ≥ 1.
//   - 0 ≤ start ≤ end < n.
//
// Errors: ErrDimensionMismatch (wrapped) on any contract violation.
//
// Complexity: O(n) time, O(n) space.
func OrderCrossover(p1, p2 []int, start, end int) ([]int, []int, error) {
	var n = len(p1)
	if err := tsp.ValidatePermutation(p1, n); err != nil {
		return nil, nil, fmt.Errorf("parent 1: %w", err)
	}
	if err := tsp.ValidatePermutation(p2, n); err != nil {
		return nil, nil, fmt.Errorf("parent 2: %w", err)
	}
	if start < 0 || end < start || end >= n {
		return nil, nil, fmt.Errorf("cut [%d,%d] outside [0,%d): %w", start, end, n, ErrDimensionMismatch)
	}

	return oxChild(p1, p2, start, end), oxChild(p2, p1, start, end), nil
}

// oxChild builds one OX child keeping keep[start..end] and filling the rest
// from donor. Inputs are assumed valid.
func oxChild(keep, donor []int, start, end int) []int {
	var (
		n       = len(keep)
		child   = make([]int, n)
		present = make([]bool, n)
		i       int
	)
	for i = range child {
		child[i] = -1
	}
	for i = start; i <= end; i++ {
		child[i] = keep[i]
		present[keep[i]] = true
	}

	var (
		cursor = end + 1
		step   int
		city   int
	)
	for step = 0; step < n; step++ {
		city = donor[(end+1+step)%n]
		if present[city] {
			continue
		}
		for child[cursor%n] != -1 {
			cursor++
		}
		child[cursor%n] = city
		present[city] = true
	}

	return child
}

// Crossover consumes parents in consecutive pairs (0&1, 2&3, …) and returns
// two evaluated children per pair. For each pair start is uniform in
// [0, n) and end is uniform in [start, n). An odd trailing parent produces
// no offspring, so len(result) == 2·⌊len(parents)/2⌋.
//
// Errors: ErrDimensionMismatch (wrapped) when a parent's length differs
// from ps.Len().
//
// Complexity: O(len(parents)·n).
func Crossover(ps *tsp.PointSet, parents []*Tour, rng Rand) ([]*Tour, error) {
	var (
		n        = ps.Len()
		children = make([]*Tour, 0, len(parents)/2*2)
		i        int
	)
	for i = 0; i+1 < len(parents); i += 2 {
		p1, p2 := parents[i], parents[i+1]
		if p1.Len() != n || p2.Len() != n {
			return nil, fmt.Errorf("pair %d: parent lengths %d/%d, want %d: %w",
				i/2, p1.Len(), p2.Len(), n, ErrDimensionMismatch)
		}

		start := rng.Intn(n)
		end := rng.Intn(n-start) + start

		c1 := adoptTour(oxChild(p1.seq, p2.seq, start, end))
		c2 := adoptTour(oxChild(p2.seq, p1.seq, start, end))
		c1.Evaluate(ps)
		c2.Evaluate(ps)
		children = append(children, c1, c2)
	}

	return children, nil
}
