// Package genetic - population container, initialization and statistics.
package genetic

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspga/tsp"
)

// Population is an ordered collection of Tours.
// The Engine replaces it wholesale every generation; it is never patched
// across generation boundaries.
type Population struct {
	tours []*Tour
}

// Stats summarizes the fitness distribution of a Population.
// StdDev is the population (not sample) standard deviation.
type Stats struct {
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64
}

// NewPopulation wraps tours. The slice is copied; the Tours are not.
func NewPopulation(tours []*Tour) *Population {
	return &Population{tours: slices.Clone(tours)}
}

// RandomPopulation builds size Tours, each a uniform random permutation of
// the cities of ps, and evaluates them.
//
// Errors: ErrEmptyPopulation when size < 1.
//
// Complexity: O(size·n).
func RandomPopulation(ps *tsp.PointSet, size int, rng Rand) (*Population, error) {
	if size < 1 {
		return nil, ErrEmptyPopulation
	}
	tours := make([]*Tour, size)
	for i := range tours {
		tours[i] = randomTour(ps, rng)
	}

	return &Population{tours: tours}, nil
}

// randomTour returns an evaluated uniformly shuffled Tour.
func randomTour(ps *tsp.PointSet, rng Rand) *Tour {
	seq := tsp.IdentityTour(ps.Len())
	shuffleInPlace(seq, rng)
	t := adoptTour(seq)
	t.Evaluate(ps)

	return t
}

// Len returns the number of Tours.
func (p *Population) Len() int { return len(p.tours) }

// At returns the Tour at position i.
func (p *Population) At(i int) *Tour { return p.tours[i] }

// Tours returns a copy of the Tour slice.
func (p *Population) Tours() []*Tour { return slices.Clone(p.tours) }

// SelectElite returns the Tour with the strictly greatest fitness; the first
// occurrence wins ties. The Population is not modified.
//
// Errors: ErrEmptyPopulation.
//
// Complexity: O(n).
func (p *Population) SelectElite() (*Tour, error) {
	if len(p.tours) == 0 {
		return nil, ErrEmptyPopulation
	}
	best := p.tours[0]
	for _, t := range p.tours[1:] {
		if t.fitness > best.fitness {
			best = t
		}
	}

	return best, nil
}

// Without returns a new Population holding every Tour except the first
// occurrence of t (compared by identity).
//
// Complexity: O(n).
func (p *Population) Without(t *Tour) *Population {
	out := make([]*Tour, 0, len(p.tours))
	removed := false
	for _, x := range p.tours {
		if !removed && x == t {
			removed = true
			continue
		}
		out = append(out, x)
	}

	return &Population{tours: out}
}

// SortByFitness orders the Population by fitness, best first. Equal
// fitness keeps its relative order.
//
// Complexity: O(n log n).
func (p *Population) SortByFitness() {
	slices.SortStableFunc(p.tours, byFitnessDesc)
}

func byFitnessDesc(a, b *Tour) int { return cmp.Compare(b.fitness, a.fitness) }

// Fitnesses returns the fitness of every Tour in Population order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.tours))
	for i, t := range p.tours {
		out[i] = t.fitness
	}

	return out
}

// Stats computes best, worst, mean and population standard deviation of
// the fitness values. An empty Population yields the zero Stats.
//
// Complexity: O(n).
func (p *Population) Stats() Stats {
	if len(p.tours) == 0 {
		return Stats{}
	}
	fits := p.Fitnesses()
	mean, std := stat.PopMeanStdDev(fits, nil)

	return Stats{
		Best:   floats.Max(fits),
		Worst:  floats.Min(fits),
		Mean:   mean,
		StdDev: std,
	}
}

// EvaluateAll re-evaluates every Tour in tours. With workers > 1 the Tours
// are split into contiguous chunks evaluated concurrently; the call returns
// only after every chunk is done. When check is set each Tour is first
// validated as a permutation of ps.
//
// Errors: ErrBrokenPermutation (wrapped) when check fails.
//
// Complexity: O(len(tours)·n) work.
func EvaluateAll(ps *tsp.PointSet, tours []*Tour, workers int, check bool) error {
	if workers <= 1 || len(tours) < 2 {
		return evaluateChunk(ps, tours, check)
	}
	if workers > len(tours) {
		workers = len(tours)
	}

	var (
		g     errgroup.Group
		chunk = (len(tours) + workers - 1) / workers
		lo    int
	)
	g.SetLimit(workers)
	for lo = 0; lo < len(tours); lo += chunk {
		part := tours[lo:min(lo+chunk, len(tours))]
		g.Go(func() error { return evaluateChunk(ps, part, check) })
	}

	return g.Wait()
}

func evaluateChunk(ps *tsp.PointSet, tours []*Tour, check bool) error {
	for _, t := range tours {
		if check {
			if err := t.validate(ps.Len()); err != nil {
				return err
			}
		}
		t.Evaluate(ps)
	}

	return nil
}
