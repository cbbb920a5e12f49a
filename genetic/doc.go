// Package genetic evolves short closed tours over a tsp.PointSet with a
// generational genetic algorithm.
//
// 🚀 What is in the engine?
//
//   - Tour        - one chromosome: an owned permutation of PointSet indices
//     plus its cached fitness (1 / cyclic length).
//   - Population  - an ordered slice of Tours; random initialization,
//     elite extraction, sorting and per-generation statistics.
//   - Selection   - hybrid parent selection: every draw flips a fair coin
//     between rank selection and roulette-wheel selection, with
//     replacement, against the whole breeding pool.
//   - Crossover   - order crossover (OX): a random contiguous segment of one
//     parent is kept in place, the remaining slots are filled in the other
//     parent's circular order, skipping cities already present.
//   - Mutation    - exactly one of two in-place operators per child:
//     pairwise swap or segment displacement.
//   - Engine      - the generational loop: elite → select → recombine →
//     mutate → evaluate → reassemble → sort → report, until the best
//     fitness stops changing for ConvergenceWindow generations
//     (StateConverged) or MaxGenerations is reached (StateExhausted).
//
// ⚙️ Usage:
//
//	ps, _ := tsp.NewPointSet(cities)
//	opts := genetic.DefaultOptions()
//	opts.Seed = 7
//	eng, err := genetic.NewEngine(ps, opts, report.NewText(os.Stdout))
//	if err != nil {
//		// ErrInvalidOptions, ErrTooFewCities
//	}
//	res, err := eng.Run(ctx)
//	fmt.Println(res.State, res.Best.Length())
//
// Determinism:
//
//	All draws go through the Rand interface. Options.Seed != 0 (or
//	Engine.WithRand) makes a run reproducible; Seed == 0 seeds from the
//	clock.
//
// Concurrency:
//
//	The loop is single-threaded. Only fitness evaluation may fan out across
//	Options.Workers goroutines, and it completes as a barrier before the
//	next phase starts. An Engine must not be shared between goroutines.
package genetic
