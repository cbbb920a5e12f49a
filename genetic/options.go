// Package genetic - run configuration.
package genetic

import (
	"fmt"
	"math"
)

// MinCities is the smallest PointSet the Engine accepts. A single city has
// a zero-length tour and therefore no finite fitness.
const MinCities = 2

// Defaults used by DefaultOptions.
const (
	DefaultPopulationSize     = 100
	DefaultMaxGenerations     = 100
	DefaultConvergenceWindow  = 50
	DefaultConvergenceEpsilon = 1e-12
)

// Options configures an Engine.
//
// Fields:
//   - PopulationSize     - Tours created at initialization (≥ 2).
//   - MaxGenerations     - generation budget (≥ 1); reaching it ends the run
//     in StateExhausted.
//   - ConvergenceWindow  - consecutive generations with an unchanged best
//     fitness that end the run in StateConverged (0 disables).
//   - ConvergenceEpsilon - two best fitness values within this relative
//     tolerance, |a−b| ≤ ε·max(|a|,|b|), count as unchanged (≥ 0).
//   - Seed               - RNG seed; 0 seeds from the clock.
//   - Workers            - goroutines used for fitness evaluation (≥ 1).
//   - Refill             - pad each new generation back to PopulationSize
//     with fresh random Tours. When false the size drifts down by the
//     parent dropped when the breeding pool has odd length.
//   - CheckInvariants    - validate every offspring as a permutation after
//     crossover and after mutation; a violation aborts the run with
//     ErrBrokenPermutation.
type Options struct {
	PopulationSize     int
	MaxGenerations     int
	ConvergenceWindow  int
	ConvergenceEpsilon float64
	Seed               int64
	Workers            int
	Refill             bool
	CheckInvariants    bool
}

// DefaultOptions returns the configuration of the reference run:
// 100 Tours, 100 generations, convergence after 50 unchanged generations.
func DefaultOptions() Options {
	return Options{
		PopulationSize:     DefaultPopulationSize,
		MaxGenerations:     DefaultMaxGenerations,
		ConvergenceWindow:  DefaultConvergenceWindow,
		ConvergenceEpsilon: DefaultConvergenceEpsilon,
		Seed:               0,
		Workers:            1,
		Refill:             false,
		CheckInvariants:    true,
	}
}

// Validate reports the first invalid field as an error wrapping
// ErrInvalidOptions.
//
// Complexity: O(1).
func (o Options) Validate() error {
	switch {
	case o.PopulationSize < 2:
		return fmt.Errorf("population size %d < 2: %w", o.PopulationSize, ErrInvalidOptions)
	case o.MaxGenerations < 1:
		return fmt.Errorf("max generations %d < 1: %w", o.MaxGenerations, ErrInvalidOptions)
	case o.ConvergenceWindow < 0:
		return fmt.Errorf("convergence window %d < 0: %w", o.ConvergenceWindow, ErrInvalidOptions)
	case o.ConvergenceEpsilon < 0 || math.IsNaN(o.ConvergenceEpsilon) || math.IsInf(o.ConvergenceEpsilon, 0):
		return fmt.Errorf("convergence epsilon %v: %w", o.ConvergenceEpsilon, ErrInvalidOptions)
	case o.Workers < 1:
		return fmt.Errorf("workers %d < 1: %w", o.Workers, ErrInvalidOptions)
	}

	return nil
}
