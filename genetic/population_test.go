package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspga/genetic"
)

func TestRandomPopulation_Permutations(t *testing.T) {
	ps := circle(t, 17)
	pop, err := genetic.RandomPopulation(ps, 40, newRand())
	require.NoError(t, err)
	require.Equal(t, 40, pop.Len())

	distinct := make(map[string]struct{})
	for _, tr := range pop.Tours() {
		requirePermutation(t, tr.Sequence(), ps.Len())
		requireEvaluated(t, ps, tr)
		distinct[tr.String()] = struct{}{}
	}
	// 17! orderings: forty identical shuffles would mean a broken shuffle.
	assert.Greater(t, len(distinct), 1)
}

func TestRandomPopulation_EmptySize(t *testing.T) {
	_, err := genetic.RandomPopulation(circle(t, 5), 0, newRand())
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)
}

func TestSelectElite(t *testing.T) {
	ps := squareWithCentre(t)
	worse, err := genetic.NewTour(ps, []int{0, 2, 1, 3, 4})
	require.NoError(t, err)
	best1, err := genetic.NewTour(ps, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	best2, err := genetic.NewTour(ps, []int{1, 2, 3, 4, 0}) // same cycle, same fitness
	require.NoError(t, err)

	pop := genetic.NewPopulation([]*genetic.Tour{worse, best1, best2})
	elite, err := pop.SelectElite()
	require.NoError(t, err)
	assert.Same(t, best1, elite, "first occurrence must win ties")
	assert.Same(t, worse, pop.At(0), "SelectElite must not reorder the population")

	_, err = genetic.NewPopulation(nil).SelectElite()
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)
}

func TestWithout_RemovesFirstOccurrenceOnly(t *testing.T) {
	ps := squareWithCentre(t)
	a, _ := genetic.NewTour(ps, []int{0, 1, 2, 3, 4})
	b, _ := genetic.NewTour(ps, []int{0, 2, 1, 3, 4})

	pop := genetic.NewPopulation([]*genetic.Tour{a, b, a})
	pool := pop.Without(a)
	require.Equal(t, 2, pool.Len())
	assert.Same(t, b, pool.At(0))
	assert.Same(t, a, pool.At(1))
	assert.Equal(t, 3, pop.Len(), "Without must not modify the receiver")
}

func TestSortByFitnessAndStats(t *testing.T) {
	ps := circle(t, 9)
	pop, err := genetic.RandomPopulation(ps, 25, newRand())
	require.NoError(t, err)

	pop.SortByFitness()
	fits := pop.Fitnesses()
	for i := 1; i < len(fits); i++ {
		require.GreaterOrEqual(t, fits[i-1], fits[i])
	}

	var mean float64
	for _, f := range fits {
		mean += f
	}
	mean /= float64(len(fits))
	var variance float64
	for _, f := range fits {
		variance += (f - mean) * (f - mean)
	}
	variance /= float64(len(fits))

	st := pop.Stats()
	assert.Equal(t, fits[0], st.Best)
	assert.Equal(t, fits[len(fits)-1], st.Worst)
	assert.InDelta(t, mean, st.Mean, epsTiny)
	assert.InDelta(t, variance, st.StdDev*st.StdDev, epsTiny)

	assert.Equal(t, genetic.Stats{}, genetic.NewPopulation(nil).Stats())
}

func TestEvaluateAll_ParallelMatchesSequential(t *testing.T) {
	ps := circle(t, 30)
	rng := newRand()

	seqPop, err := genetic.RandomPopulation(ps, 33, rng)
	require.NoError(t, err)
	clones := make([]*genetic.Tour, 0, seqPop.Len())
	for _, tr := range seqPop.Tours() {
		c := tr.Clone()
		genetic.Mutate(c, rng)
		clones = append(clones, c)
	}
	parPop := genetic.NewPopulation(clones)
	seqClones := make([]*genetic.Tour, len(clones))
	for i, c := range clones {
		seqClones[i] = c.Clone()
	}

	require.NoError(t, genetic.EvaluateAll(ps, parPop.Tours(), 4, true))
	require.NoError(t, genetic.EvaluateAll(ps, seqClones, 1, true))
	for i, c := range parPop.Tours() {
		requireEvaluated(t, ps, c)
		assert.Equal(t, seqClones[i].Fitness(), c.Fitness())
	}
}
