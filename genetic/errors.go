// Package genetic - sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context is attached at the call site with %w, never baked into the
//     sentinel text.
package genetic

import (
	"errors"

	"github.com/katalvlaran/tspga/tsp"
)

// ErrInvalidOptions indicates an Options value that fails Validate.
var ErrInvalidOptions = errors.New("genetic: invalid options")

// ErrEmptyPopulation indicates an operation that needs at least one Tour
// was given an empty Population.
var ErrEmptyPopulation = errors.New("genetic: empty population")

// ErrTooFewCities indicates a PointSet smaller than MinCities.
var ErrTooFewCities = errors.New("genetic: too few cities")

// ErrBrokenPermutation indicates a Tour that no longer visits every city
// exactly once. It is an internal defect, never a user error.
var ErrBrokenPermutation = errors.New("genetic: tour is not a permutation")

// ErrTerminal is returned by Engine.Step once the run has converged or
// exhausted its generation budget.
var ErrTerminal = errors.New("genetic: engine reached a terminal state")

// ErrDimensionMismatch is tsp.ErrDimensionMismatch, re-exported so callers
// of the crossover and mutation cores can branch without importing tsp.
var ErrDimensionMismatch = tsp.ErrDimensionMismatch
