// Package tsp - cost utilities for index tours.
//
// A tour here is an open permutation of PointSet indices read as a closed
// loop; there is no repeated closing vertex as in matrix-based solvers.
//
// Design:
//   - Side-effect free; the hot path performs no allocation.
//   - The caller guarantees a non-empty tour of in-range indices. Use
//     ValidatePermutation when the tour comes from untrusted input.
package tsp

// TourLength returns the total cyclic distance of tour: the sum of the
// distances between consecutive indices plus the distance from the last
// index back to the first.
//
// A single-city tour has length 0.
//
// Complexity: O(n).
func (ps *PointSet) TourLength(tour []int) float64 {
	var (
		n   = len(tour)
		sum float64
		i   int
	)
	if n == 0 {
		return 0
	}
	for i = 0; i < n-1; i++ {
		sum += ps.Distance(tour[i], tour[i+1])
	}
	// Close the loop exactly once.
	sum += ps.Distance(tour[n-1], tour[0])

	return sum
}

// CheckedTourLength validates tour against the PointSet before measuring it.
//
// Errors: ErrDimensionMismatch (see ValidatePermutation).
//
// Complexity: O(n) time, O(n) space.
func (ps *PointSet) CheckedTourLength(tour []int) (float64, error) {
	if err := ValidatePermutation(tour, ps.Len()); err != nil {
		return 0, err
	}

	return ps.TourLength(tour), nil
}
