// Package tspga evolves short round trips through a set of cities with a
// generational genetic algorithm.
//
// 🚀 What is in the module?
//
//	A small, deterministic-by-seed toolkit for the Euclidean TSP:
//		• tsp/       - immutable point set, cached distances, tour length
//		• genetic/   - tours, populations, hybrid selection, order crossover,
//		               swap/displacement mutation and the elitist engine
//		• tsplib/    - TSPLIB NODE_COORD_SECTION reader
//		• report/    - per-generation sinks: console text, slog, Prometheus,
//		               SQLite run history
//		• cmd/tspga/ - the command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │      the engine keeps the shorter of the two loops:
//	    4───3      1 2 3 4 (perimeter) beats 1 3 2 4 (crossed)
//
// Usage:
//
//	go run ./cmd/tspga -seed 7 -generations 500 berlin52.tsp
package tspga
