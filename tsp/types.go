// Package tsp - core types and sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (offending ID, index) is attached with %w at the call site.
package tsp

import "errors"

// ErrEmptyPointSet is returned when a PointSet is built from zero cities.
var ErrEmptyPointSet = errors.New("tsp: point set is empty")

// ErrDuplicateCityID is returned when two cities share the same ID.
var ErrDuplicateCityID = errors.New("tsp: duplicate city id")

// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
var ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

// ErrDimensionMismatch signals a tour whose shape does not match the point
// set: wrong length, an out-of-range index, or a repeated index.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// City is a single point of the instance.
//
// ID is the label carried by the input file and is only used for reporting;
// inside tours a city is referred to by its position in the PointSet.
// X and Y are unit-less plane coordinates.
type City struct {
	ID int
	X  float64
	Y  float64
}
