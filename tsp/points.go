// Package tsp - immutable point set with a cached distance matrix.
//
// The distance cache is a gonum *mat.SymDense: Euclidean distances are
// symmetric with a zero diagonal, so only the upper triangle is written.
// Above MaxCachedCities the cache is skipped and distances are computed on
// demand from the coordinates; both paths produce bit-identical values.
package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxCachedCities is the largest point set for which NewPointSet
// precomputes the distance matrix (4096² float64 ≈ 128 MiB).
const MaxCachedCities = 4096

// PointSet is an immutable, validated collection of cities.
// It is safe for concurrent readers once constructed.
type PointSet struct {
	cities []City
	dist   *mat.SymDense // nil when len(cities) > MaxCachedCities
}

// NewPointSet validates cities and builds a PointSet that owns a private
// copy of them. Order is preserved: index i of the PointSet is cities[i].
//
// Errors:
//   - ErrEmptyPointSet        - len(cities) == 0.
//   - ErrNonFiniteCoordinate  - any X or Y is NaN or ±Inf.
//   - ErrDuplicateCityID      - two cities share an ID.
//
// Complexity: O(n²) time and space with caching, O(n) otherwise.
func NewPointSet(cities []City) (*PointSet, error) {
	var n = len(cities)
	if n == 0 {
		return nil, ErrEmptyPointSet
	}

	var (
		owned = make([]City, n)
		seen  = make(map[int]struct{}, n)
		i     int
		c     City
	)
	for i, c = range cities {
		if !isFinite(c.X) || !isFinite(c.Y) {
			return nil, fmt.Errorf("city %d at index %d: %w", c.ID, i, ErrNonFiniteCoordinate)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("city %d at index %d: %w", c.ID, i, ErrDuplicateCityID)
		}
		seen[c.ID] = struct{}{}
		owned[i] = c
	}

	ps := &PointSet{cities: owned}
	if n <= MaxCachedCities {
		ps.dist = buildDistanceCache(owned)
	}

	return ps, nil
}

// buildDistanceCache fills the upper triangle of a symmetric matrix with
// pairwise Euclidean distances.
//
// Complexity: O(n²).
func buildDistanceCache(cities []City) *mat.SymDense {
	var (
		n    = len(cities)
		sym  = mat.NewSymDense(n, nil)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sym.SetSym(i, j, euclid(cities[i], cities[j]))
		}
	}

	return sym
}

// Len returns the number of cities.
func (ps *PointSet) Len() int { return len(ps.cities) }

// City returns the city stored at index i. It panics on an out-of-range
// index like a slice access would.
func (ps *PointSet) City(i int) City { return ps.cities[i] }

// Cities returns a copy of the cities in PointSet order.
func (ps *PointSet) Cities() []City {
	out := make([]City, len(ps.cities))
	copy(out, ps.cities)

	return out
}

// Cached reports whether pairwise distances are served from the matrix.
func (ps *PointSet) Cached() bool { return ps.dist != nil }

// Distance returns the Euclidean distance between the cities at indices i
// and j.
//
// Complexity: O(1).
func (ps *PointSet) Distance(i, j int) float64 {
	if ps.dist != nil {
		return ps.dist.At(i, j)
	}

	return euclid(ps.cities[i], ps.cities[j])
}

// euclid is sqrt((x2-x1)^2 + (y2-y1)^2).
func euclid(a, b City) float64 {
	var (
		dx = b.X - a.X
		dy = b.Y - a.Y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
