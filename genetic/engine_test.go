package genetic_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspga/genetic"
	"github.com/katalvlaran/tspga/tsp"
)

// testOptions returns DefaultOptions with a fixed seed and convergence off.
func testOptions(pop, gens int) genetic.Options {
	opts := genetic.DefaultOptions()
	opts.PopulationSize = pop
	opts.MaxGenerations = gens
	opts.ConvergenceWindow = 0
	opts.Seed = seedDet

	return opts
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, genetic.DefaultOptions().Validate())

	cases := []struct {
		name string
		edit func(*genetic.Options)
	}{
		{"population below two", func(o *genetic.Options) { o.PopulationSize = 1 }},
		{"zero generations", func(o *genetic.Options) { o.MaxGenerations = 0 }},
		{"negative window", func(o *genetic.Options) { o.ConvergenceWindow = -1 }},
		{"negative epsilon", func(o *genetic.Options) { o.ConvergenceEpsilon = -1e-9 }},
		{"zero workers", func(o *genetic.Options) { o.Workers = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := genetic.DefaultOptions()
			tc.edit(&opts)
			require.ErrorIs(t, opts.Validate(), genetic.ErrInvalidOptions)

			_, err := genetic.NewEngine(circle(t, 5), opts)
			require.ErrorIs(t, err, genetic.ErrInvalidOptions)
		})
	}
}

func TestNewEngine_TooFewCities(t *testing.T) {
	one, err := tsp.NewPointSet([]tsp.City{{ID: 1}})
	require.NoError(t, err)

	_, err = genetic.NewEngine(one, genetic.DefaultOptions())
	require.ErrorIs(t, err, genetic.ErrTooFewCities)
	_, err = genetic.NewEngine(nil, genetic.DefaultOptions())
	require.ErrorIs(t, err, genetic.ErrTooFewCities)
}

func TestEngine_InitialState(t *testing.T) {
	eng, err := genetic.NewEngine(circle(t, 6), testOptions(10, 5))
	require.NoError(t, err)

	assert.Equal(t, genetic.StateInit, eng.State())
	assert.Nil(t, eng.Population())
	assert.Nil(t, eng.Best())
	assert.NotEqual(t, uuid.Nil, eng.RunID())

	require.NoError(t, eng.Init())
	assert.Equal(t, genetic.StateIterating, eng.State())
	assert.Equal(t, 10, eng.Population().Len())
	assert.Equal(t, 0, eng.Generation())
	assert.NotNil(t, eng.Best())
}

func TestEngine_RunImprovesAndKeepsElite(t *testing.T) {
	ps := circle(t, 8)
	eng, err := genetic.NewEngine(ps, testOptions(30, 60))
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, genetic.StateExhausted, res.State)
	assert.Equal(t, 60, res.Generations)
	require.Len(t, res.History, 60)

	for i, s := range res.History {
		assert.Equal(t, i+1, s.Generation)
		assert.Equal(t, res.RunID, s.RunID)
		assert.GreaterOrEqual(t, s.BestFitness+epsTiny, s.MeanFitness)
		assert.GreaterOrEqual(t, s.MeanFitness+epsTiny, s.WorstFitness)
		assert.InDelta(t, 1/s.BestFitness, s.BestLength, 1e-9)
		if i > 0 {
			require.GreaterOrEqual(t, s.BestFitness, res.History[i-1].BestFitness,
				"best fitness fell at generation %d", s.Generation)
		}
	}

	requirePermutation(t, res.Best.Sequence(), ps.Len())
	requireEvaluated(t, ps, res.Best)
	assert.LessOrEqual(t, res.Best.Length(), res.History[0].BestLength)
	assert.InDelta(t, res.History[59].BestFitness, res.Best.Fitness(), epsTiny)

	for _, tr := range eng.Population().Tours() {
		requirePermutation(t, tr.Sequence(), ps.Len())
		requireEvaluated(t, ps, tr)
	}
}

func TestEngine_FiveCityEndToEnd(t *testing.T) {
	ps := squareWithCentre(t)
	eng, err := genetic.NewEngine(ps, testOptions(20, 30))
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, res.Generations)

	for i := 1; i < len(res.History); i++ {
		require.GreaterOrEqual(t, res.History[i].BestFitness, res.History[i-1].BestFitness)
	}
	requirePermutation(t, res.Best.Sequence(), ps.Len())
	assert.LessOrEqual(t, res.Best.Length(), res.History[0].BestLength)
	// No closed tour over these five points is shorter than the perimeter
	// detour through the centre.
	assert.GreaterOrEqual(t, res.Best.Length()+epsTiny, 3+2*math.Sqrt(0.5))
}

func TestEngine_ConvergesOnTriangle(t *testing.T) {
	// Every cyclic order of three cities has the same length, so the best
	// fitness never moves.
	ps, err := tsp.NewPointSet([]tsp.City{{ID: 1}, {ID: 2, X: 3}, {ID: 3, Y: 4}})
	require.NoError(t, err)

	opts := testOptions(6, 100)
	opts.ConvergenceWindow = 5
	eng, err := genetic.NewEngine(ps, opts)
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, genetic.StateConverged, res.State)
	assert.Equal(t, 5, res.Generations)
	for i, s := range res.History {
		assert.Equal(t, i+1, s.Unchanged)
	}
	assert.InDelta(t, 12.0, res.Best.Length(), 1e-9)
}

func TestEngine_ConvergenceWinsOverExhaustion(t *testing.T) {
	ps, err := tsp.NewPointSet([]tsp.City{{ID: 1}, {ID: 2, X: 3}, {ID: 3, Y: 4}})
	require.NoError(t, err)

	opts := testOptions(4, 5)
	opts.ConvergenceWindow = 5
	eng, err := genetic.NewEngine(ps, opts)
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, genetic.StateConverged, res.State)
	assert.Equal(t, 5, res.Generations)
}

func TestEngine_ExhaustsThenRefusesToStep(t *testing.T) {
	eng, err := genetic.NewEngine(circle(t, 12), testOptions(10, 3))
	require.NoError(t, err)

	ctx := context.Background()
	for g := 1; g <= 3; g++ {
		s, err := eng.Step(ctx)
		require.NoError(t, err)
		assert.Equal(t, g, s.Generation)
	}
	assert.Equal(t, genetic.StateExhausted, eng.State())
	assert.True(t, eng.State().Terminal())

	_, err = eng.Step(ctx)
	require.ErrorIs(t, err, genetic.ErrTerminal)
	assert.Equal(t, 3, eng.Generation())
}

func TestEngine_PopulationDrift(t *testing.T) {
	cases := []struct {
		name   string
		size   int
		refill bool
		want   int
	}{
		{"even size loses one", 10, false, 9},
		{"odd size is stable", 11, false, 11},
		{"refill restores even size", 10, true, 10},
		{"two collapses to the elite", 2, false, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions(tc.size, 4)
			opts.Refill = tc.refill
			eng, err := genetic.NewEngine(circle(t, 7), opts)
			require.NoError(t, err)

			res, err := eng.Run(context.Background())
			require.NoError(t, err)
			for _, s := range res.History {
				assert.Equal(t, tc.want, s.PopulationSize, "generation %d", s.Generation)
			}
			assert.Equal(t, tc.want, eng.Population().Len())
		})
	}
}

func TestEngine_ReportersSeeEveryGeneration(t *testing.T) {
	var gens []int
	rec := genetic.ReporterFunc(func(_ context.Context, s genetic.Summary) error {
		gens = append(gens, s.Generation)
		return nil
	})

	eng, err := genetic.NewEngine(circle(t, 6), testOptions(8, 7), rec)
	require.NoError(t, err)
	_, err = eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, gens)
	assert.Len(t, eng.History(), 7)
}

func TestEngine_ReporterErrorAbortsRun(t *testing.T) {
	errSink := errors.New("sink full")
	calls := 0
	failing := genetic.ReporterFunc(func(_ context.Context, s genetic.Summary) error {
		calls++
		if s.Generation == 2 {
			return errSink
		}
		return nil
	})

	eng, err := genetic.NewEngine(circle(t, 6), testOptions(8, 10), failing)
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.ErrorIs(t, err, errSink)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, res.Generations)
	assert.Equal(t, genetic.StateIterating, res.State)
}

// stripRunID clears the per-engine identifier so two runs can be compared.
func stripRunID(h []genetic.Summary) []genetic.Summary {
	for i := range h {
		h[i].RunID = uuid.Nil
	}

	return h
}

func TestEngine_SeedDeterminism(t *testing.T) {
	ps := circle(t, 15)
	run := func(workers int) genetic.Result {
		opts := testOptions(24, 25)
		opts.Workers = workers
		eng, err := genetic.NewEngine(ps, opts)
		require.NoError(t, err)
		res, err := eng.Run(context.Background())
		require.NoError(t, err)

		return res
	}

	a, b, par := run(1), run(1), run(4)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, stripRunID(a.History), stripRunID(b.History))
	assert.Equal(t, a.Best.Sequence(), b.Best.Sequence())
	assert.Equal(t, stripRunID(a.History), stripRunID(par.History), "workers must not change the outcome")
}

func TestEngine_WithRand(t *testing.T) {
	ps := circle(t, 9)
	opts := testOptions(12, 5)
	opts.Seed = 1 // overridden below

	e1, err := genetic.NewEngine(ps, opts)
	require.NoError(t, err)
	e1.WithRand(rand.New(rand.NewSource(99)))
	e2, err := genetic.NewEngine(ps, opts)
	require.NoError(t, err)
	e2.WithRand(rand.New(rand.NewSource(99)))

	r1, err := e1.Run(context.Background())
	require.NoError(t, err)
	r2, err := e2.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stripRunID(r1.History), stripRunID(r2.History))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "init", genetic.StateInit.String())
	assert.Equal(t, "iterating", genetic.StateIterating.String())
	assert.Equal(t, "converged", genetic.StateConverged.String())
	assert.Equal(t, "exhausted", genetic.StateExhausted.String())
	assert.Equal(t, "State(9)", genetic.State(9).String())
	assert.False(t, genetic.StateIterating.Terminal())
}
