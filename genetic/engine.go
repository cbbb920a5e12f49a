// Package genetic - the generational loop.
//
// State machine:
//
//	StateInit ──Init──▶ StateIterating ──Step…──▶ StateConverged
//	                                       └────▶ StateExhausted
//
// One Step:
//  1. elite  = best Tour of the current Population (kept unmodified);
//  2. pool   = Population without the elite;
//  3. parents = SelectParents(pool); children = Crossover(parents);
//  4. MutateAll(children); EvaluateAll(children) (optionally parallel);
//  5. next   = children ∪ {elite} (+ random immigrants when Refill);
//  6. sort next best-first, summarize, report;
//  7. convergence: |a − b| ≤ ε·max(|a|, |b|) for a = elite.fitness and
//     b = next.best.fitness ⇒ Unchanged++,
//     else Unchanged = 0.
//
// Because the elite survives untouched, the best fitness never decreases
// from one generation to the next.
package genetic

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/tspga/tsp"
)

// State is the lifecycle phase of an Engine.
type State int

const (
	// StateInit: no Population yet.
	StateInit State = iota
	// StateIterating: generations are being produced.
	StateIterating
	// StateConverged: the best fitness was unchanged for ConvergenceWindow
	// consecutive generations. Terminal.
	StateConverged
	// StateExhausted: MaxGenerations were produced without convergence.
	// Terminal.
	StateExhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further generation can be produced.
func (s State) Terminal() bool { return s == StateConverged || s == StateExhausted }

// historyPrealloc caps the up-front History allocation for large budgets.
const historyPrealloc = 1024

// Result is what Run returns once the Engine reaches a terminal state.
type Result struct {
	RunID       uuid.UUID
	State       State
	Generations int
	Best        *Tour
	History     []Summary
}

// Engine runs the genetic algorithm over one PointSet.
// It is not safe for concurrent use.
type Engine struct {
	ps        *tsp.PointSet
	opts      Options
	rng       Rand
	reporters []Reporter

	runID      uuid.UUID
	state      State
	pop        *Population
	generation int
	unchanged  int
	history    []Summary
}

// NewEngine validates opts and ps and returns an Engine in StateInit.
// Reporters receive every Summary, in the order given.
//
// Errors: ErrInvalidOptions (wrapped), ErrTooFewCities (wrapped).
func NewEngine(ps *tsp.PointSet, opts Options, reporters ...Reporter) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ps == nil || ps.Len() < MinCities {
		var n int
		if ps != nil {
			n = ps.Len()
		}
		return nil, fmt.Errorf("%d cities, need %d: %w", n, MinCities, ErrTooFewCities)
	}

	return &Engine{
		ps:        ps,
		opts:      opts,
		rng:       NewRand(opts.Seed),
		reporters: reporters,
		runID:     uuid.New(),
		state:     StateInit,
		history:   make([]Summary, 0, min(opts.MaxGenerations, historyPrealloc)),
	}, nil
}

// WithRand replaces the random source. It must be called before Init.
func (e *Engine) WithRand(r Rand) *Engine {
	e.rng = r

	return e
}

// RunID returns the identifier stamped on every Summary of this run.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Generation returns the number of completed generations.
func (e *Engine) Generation() int { return e.generation }

// Options returns the configuration the Engine was built with.
func (e *Engine) Options() Options { return e.opts }

// PointSet returns the instance being solved.
func (e *Engine) PointSet() *tsp.PointSet { return e.ps }

// Population returns the current Population, best-first after the first
// Step. It is nil before Init.
func (e *Engine) Population() *Population { return e.pop }

// History returns a copy of every Summary produced so far.
func (e *Engine) History() []Summary {
	out := make([]Summary, len(e.history))
	copy(out, e.history)

	return out
}

// Best returns the fittest Tour of the current Population, or nil before
// Init.
func (e *Engine) Best() *Tour {
	if e.pop == nil {
		return nil
	}
	best, err := e.pop.SelectElite()
	if err != nil {
		return nil
	}

	return best
}

// Init builds and evaluates the random initial Population and moves the
// Engine to StateIterating. Calling it again after that is a no-op.
func (e *Engine) Init() error {
	if e.state != StateInit {
		return nil
	}
	pop, err := RandomPopulation(e.ps, e.opts.PopulationSize, e.rng)
	if err != nil {
		return err
	}
	e.pop = pop
	e.state = StateIterating

	return nil
}

// Step produces exactly one generation, reports it, and updates the state.
// It calls Init first when needed.
//
// Errors: ErrTerminal once converged or exhausted; ErrBrokenPermutation
// (wrapped) when CheckInvariants catches a corrupted offspring; any
// Reporter error (wrapped).
func (e *Engine) Step(ctx context.Context) (Summary, error) {
	if e.state.Terminal() {
		return Summary{}, fmt.Errorf("step after %s: %w", e.state, ErrTerminal)
	}
	if err := e.Init(); err != nil {
		return Summary{}, err
	}

	elite, err := e.pop.SelectElite()
	if err != nil {
		return Summary{}, fmt.Errorf("generation %d: %w", e.generation+1, err)
	}

	offspring, err := e.breed(e.pop.Without(elite))
	if err != nil {
		return Summary{}, fmt.Errorf("generation %d: %w", e.generation+1, err)
	}

	next := make([]*Tour, 0, max(len(offspring)+1, e.opts.PopulationSize))
	next = append(next, offspring...)
	next = append(next, elite)
	if e.opts.Refill {
		for len(next) < e.opts.PopulationSize {
			next = append(next, randomTour(e.ps, e.rng))
		}
	}
	pop := &Population{tours: next}
	pop.SortByFitness()

	best := pop.At(0)
	if sameFitness(elite.fitness, best.fitness, e.opts.ConvergenceEpsilon) {
		e.unchanged++
	} else {
		e.unchanged = 0
	}

	e.pop = pop
	e.generation++

	st := pop.Stats()
	s := Summary{
		RunID:          e.runID,
		Generation:     e.generation,
		BestFitness:    st.Best,
		WorstFitness:   st.Worst,
		MeanFitness:    st.Mean,
		StdDevFitness:  st.StdDev,
		BestLength:     best.length,
		PopulationSize: pop.Len(),
		Unchanged:      e.unchanged,
	}
	e.history = append(e.history, s)

	switch {
	case e.opts.ConvergenceWindow > 0 && e.unchanged >= e.opts.ConvergenceWindow:
		e.state = StateConverged
	case e.generation >= e.opts.MaxGenerations:
		e.state = StateExhausted
	}

	for _, r := range e.reporters {
		if err = r.Report(ctx, s); err != nil {
			return s, fmt.Errorf("report generation %d: %w", s.Generation, err)
		}
	}

	return s, nil
}

// breed runs selection, crossover and mutation over pool and returns the
// evaluated offspring. An empty pool breeds nothing.
func (e *Engine) breed(pool *Population) ([]*Tour, error) {
	if pool.Len() == 0 {
		return nil, nil
	}
	parents, err := SelectParents(pool, e.rng)
	if err != nil {
		return nil, err
	}
	children, err := Crossover(e.ps, parents, e.rng)
	if err != nil {
		return nil, err
	}
	if e.opts.CheckInvariants {
		for i, c := range children {
			if err = c.validate(e.ps.Len()); err != nil {
				return nil, fmt.Errorf("crossover child %d: %w", i, err)
			}
		}
	}

	MutateAll(children, e.rng)
	if err = EvaluateAll(e.ps, children, e.opts.Workers, e.opts.CheckInvariants); err != nil {
		return nil, fmt.Errorf("mutated offspring: %w", err)
	}

	return children, nil
}

// Run steps until the Engine converges or exhausts its generation budget.
// ctx is handed to Reporters; the loop itself has no cancellation points
// beyond its limits.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if err := e.Init(); err != nil {
		return Result{}, err
	}
	for !e.state.Terminal() {
		if _, err := e.Step(ctx); err != nil {
			return e.result(), err
		}
	}

	return e.result(), nil
}

func (e *Engine) result() Result {
	return Result{
		RunID:       e.runID,
		State:       e.state,
		Generations: e.generation,
		Best:        e.Best(),
		History:     e.History(),
	}
}

// sameFitness reports whether a and b agree within the relative tolerance
// eps, so the verdict does not depend on the coordinate scale of the
// instance. eps = 0 demands exact equality.
func sameFitness(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(math.Abs(a), math.Abs(b))
}
