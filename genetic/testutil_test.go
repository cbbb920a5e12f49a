// Package genetic_test provides helpers shared by the black-box tests of
// this package.
package genetic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspga/genetic"
	"github.com/katalvlaran/tspga/tsp"
)

const (
	// seedDet is the fixed seed used by every stochastic test.
	seedDet = int64(20240611)

	// epsTiny is the tolerance for fitness comparisons.
	epsTiny = 1e-12
)

// newRand returns a deterministic source for one test.
func newRand() *rand.Rand { return rand.New(rand.NewSource(seedDet)) }

// squareWithCentre is the five-city instance: unit square corners + centre.
func squareWithCentre(t testing.TB) *tsp.PointSet {
	t.Helper()
	ps, err := tsp.NewPointSet([]tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 0, Y: 1},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 1, Y: 0},
		{ID: 5, X: 0.5, Y: 0.5},
	})
	require.NoError(t, err)

	return ps
}

// circle places n cities evenly on a circle of radius 10; its optimal tour
// visits them in angular order.
func circle(t testing.TB, n int) *tsp.PointSet {
	t.Helper()
	cities := make([]tsp.City, n)
	for i := range cities {
		th := 2 * math.Pi * float64(i) / float64(n)
		cities[i] = tsp.City{ID: i + 1, X: 10 * math.Cos(th), Y: 10 * math.Sin(th)}
	}
	ps, err := tsp.NewPointSet(cities)
	require.NoError(t, err)

	return ps
}

// requirePermutation fails unless seq visits each of n cities exactly once.
func requirePermutation(t testing.TB, seq []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(seq, n), "sequence %v", seq)
}

// requireEvaluated fails unless the Tour's cached fitness matches a fresh
// evaluation.
func requireEvaluated(t testing.TB, ps *tsp.PointSet, tr *genetic.Tour) {
	t.Helper()
	require.False(t, tr.Stale())
	require.InDelta(t, genetic.Evaluate(ps, tr.Sequence()), tr.Fitness(), epsTiny)
}

// scriptedRand replays fixed draws; it panics when a script runs dry so a
// test never silently consumes more randomness than it planned for.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic("scriptedRand: scripted value outside [0,n)")
	}

	return v
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}
