// Package genetic - chromosome representation and fitness evaluation.
package genetic

import (
	"fmt"

	"github.com/katalvlaran/tspga/tsp"
)

// Tour is one candidate solution: a permutation of PointSet indices read as
// a closed loop.
//
// Invariants:
//   - seq is owned by the Tour; no two Tours share a backing array.
//   - fitness == 1/length == Evaluate(ps, seq) unless the Tour is stale,
//     i.e. mutated since its last Evaluate.
//   - weight is scratch space for rank selection and carries no meaning
//     outside a single selection call.
type Tour struct {
	seq     []int
	fitness float64
	length  float64
	weight  float64
	stale   bool
}

// Evaluate returns the fitness of seq: 1 / ps.TourLength(seq).
// A strictly shorter tour always yields a strictly higher fitness.
//
// Precondition: seq is non-empty with in-range indices; the engine never
// builds a tour that violates this.
//
// Complexity: O(n).
func Evaluate(ps *tsp.PointSet, seq []int) float64 {
	return 1 / ps.TourLength(seq)
}

// NewTour validates seq against ps, copies it and evaluates the copy.
//
// Errors: tsp.ErrDimensionMismatch when seq is not a permutation of ps.
//
// Complexity: O(n).
func NewTour(ps *tsp.PointSet, seq []int) (*Tour, error) {
	length, err := ps.CheckedTourLength(seq)
	if err != nil {
		return nil, err
	}

	return &Tour{seq: tsp.CopyTour(seq), length: length, fitness: 1 / length}, nil
}

// adoptTour wraps seq without copying; the caller hands over ownership.
// The returned Tour is stale until evaluated.
func adoptTour(seq []int) *Tour {
	return &Tour{seq: seq, stale: true}
}

// Evaluate recomputes length and fitness from scratch and clears the stale
// flag.
//
// Complexity: O(n).
func (t *Tour) Evaluate(ps *tsp.PointSet) {
	t.length = ps.TourLength(t.seq)
	t.fitness = 1 / t.length
	t.stale = false
}

// Fitness returns the cached fitness (1 / length).
func (t *Tour) Fitness() float64 { return t.fitness }

// Length returns the cached cyclic length.
func (t *Tour) Length() float64 { return t.length }

// Len returns the number of cities in the tour.
func (t *Tour) Len() int { return len(t.seq) }

// Stale reports whether the sequence changed since the last Evaluate.
func (t *Tour) Stale() bool { return t.stale }

// Sequence returns a copy of the index sequence.
func (t *Tour) Sequence() []int { return tsp.CopyTour(t.seq) }

// Cities resolves the sequence into the cities of ps, in visiting order.
func (t *Tour) Cities(ps *tsp.PointSet) []tsp.City {
	out := make([]tsp.City, len(t.seq))
	for i, idx := range t.seq {
		out[i] = ps.City(idx)
	}

	return out
}

// CityIDs resolves the sequence into the input-file IDs of ps.
func (t *Tour) CityIDs(ps *tsp.PointSet) []int {
	out := make([]int, len(t.seq))
	for i, idx := range t.seq {
		out[i] = ps.City(idx).ID
	}

	return out
}

// Clone returns a deep copy, including the cached fitness.
func (t *Tour) Clone() *Tour {
	return &Tour{
		seq:     tsp.CopyTour(t.seq),
		fitness: t.fitness,
		length:  t.length,
		stale:   t.stale,
	}
}

// validate checks the permutation invariant against n cities.
func (t *Tour) validate(n int) error {
	if err := tsp.ValidatePermutation(t.seq, n); err != nil {
		return fmt.Errorf("%w: %w", ErrBrokenPermutation, err)
	}

	return nil
}

// String implements fmt.Stringer for debugging.
func (t *Tour) String() string {
	return fmt.Sprintf("Tour{len=%.6f fitness=%.9f seq=%s}", t.length, t.fitness, tsp.DebugString(t.seq))
}
