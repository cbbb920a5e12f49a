// Package tsp models the input of a 2-D Euclidean Travelling Salesman
// instance: an immutable set of cities, their pairwise distances, and the
// length of a closed tour expressed as a permutation of city indices.
//
// 🚀 What lives here?
//
//   - City      - one point {ID, X, Y} as read from the input file.
//   - PointSet  - an immutable, validated collection of cities with a
//     precomputed symmetric distance cache (gonum mat.SymDense).
//   - TourLength / ValidatePermutation - helpers shared by every solver
//     that represents a tour as an index permutation over the PointSet.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tspga/tsp"
//
//	ps, err := tsp.NewPointSet([]tsp.City{
//		{ID: 1, X: 0, Y: 0},
//		{ID: 2, X: 0, Y: 1},
//		{ID: 3, X: 1, Y: 1},
//	})
//	if err != nil {
//		// ErrEmptyPointSet, ErrDuplicateCityID, ErrNonFiniteCoordinate
//	}
//	length := ps.TourLength([]int{0, 1, 2}) // closed loop: 0→1→2→0
//
// A tour is a slice of indices into the PointSet (not city IDs). It is read
// as a closed loop: the edge from the last index back to the first is
// counted exactly once.
//
// Performance:
//
//   - NewPointSet: O(n²) time and memory while n ≤ MaxCachedCities,
//     O(n) above that (distances are then computed on demand).
//   - Distance:    O(1).
//   - TourLength:  O(n).
//
// The package does not log and does not panic on user input; invalid input
// is reported through the sentinel errors declared in types.go.
package tsp
