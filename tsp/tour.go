// Package tsp - tour structure utilities.
//
// Helpers that operate purely on index sequences, independent of
// coordinates:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - IdentityTour:        the tour 0,1,…,n-1.
//   - CopyTour:            independent copy of a tour slice.
//   - DebugString:         compact printable form for tests/debug.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. It allocates a single O(n) marker slice.
//
// Errors: ErrDimensionMismatch wrapped with the offending position.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("length %d, want %d: %w", len(perm), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("index %d out of range at position %d: %w", v, i, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("index %d repeated at position %d: %w", v, i, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// IdentityTour returns the tour [0, 1, …, n-1].
//
// Complexity: O(n).
func IdentityTour(n int) []int {
	if n < 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation such as
// "[0 3 1 2 | 0]" where the vertical bar marks the implicit return edge.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteByte(']')

	return sb.String()
}
