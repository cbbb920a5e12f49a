// Package genetic - parent selection.
//
// Two strategies share one cumulative-draw wheel:
//   - Rank:     Tours sorted best-first; rank r (0-based) weighs (r+1)/n,
//     so the best Tour weighs 1/n and the worst weighs 1.
//   - Roulette: Tours in population order, weighted by raw fitness.
//
// A draw r is taken uniformly in [0, Σw); the first Tour whose running sum
// reaches r is returned, the last Tour when rounding leaves none.
package genetic

import "slices"

// SelectRank draws one Tour by rank selection. The weights are written into
// each Tour's transient selection weight. pop itself is not reordered.
// Returns nil for an empty Population.
//
// Complexity: O(n log n).
func SelectRank(pop *Population, rng Rand) *Tour {
	if pop.Len() == 0 {
		return nil
	}
	ranked, total := rankOrder(pop.tours)

	return spin(ranked, total, rankWeight, rng)
}

// SelectRoulette draws one Tour with probability proportional to its
// fitness. Returns nil for an empty Population.
//
// Complexity: O(n).
func SelectRoulette(pop *Population, rng Rand) *Tour {
	if pop.Len() == 0 {
		return nil
	}

	return spin(pop.tours, fitnessTotal(pop.tours), fitnessWeight, rng)
}

// SelectParents returns pop.Len() parents drawn with replacement. For every
// slot a fair coin picks rank selection (< 0.5) or roulette selection; both
// draw from the whole Population, so one Tour may fill several slots,
// including both halves of a crossover pair.
//
// The rank order is computed once per call: the Population does not change
// while parents are drawn, so this is equivalent to re-ranking per draw.
//
// Errors: ErrEmptyPopulation.
//
// Complexity: O(n log n + n²) worst case (n linear wheel walks).
func SelectParents(pop *Population, rng Rand) ([]*Tour, error) {
	var n = pop.Len()
	if n == 0 {
		return nil, ErrEmptyPopulation
	}

	var (
		ranked, rankTotal = rankOrder(pop.tours)
		fitTotal          = fitnessTotal(pop.tours)
		parents           = make([]*Tour, n)
		i                 int
	)
	for i = 0; i < n; i++ {
		if coin(rng) {
			parents[i] = spin(ranked, rankTotal, rankWeight, rng)
		} else {
			parents[i] = spin(pop.tours, fitTotal, fitnessWeight, rng)
		}
	}

	return parents, nil
}

// rankOrder returns a best-first copy of tours with rank weights assigned,
// and the sum of those weights.
func rankOrder(tours []*Tour) ([]*Tour, float64) {
	var (
		ranked = slices.Clone(tours)
		n      = float64(len(ranked))
		total  float64
	)
	slices.SortStableFunc(ranked, byFitnessDesc)
	for r, t := range ranked {
		t.weight = float64(r+1) / n
		total += t.weight
	}

	return ranked, total
}

func fitnessTotal(tours []*Tour) float64 {
	var total float64
	for _, t := range tours {
		total += t.fitness
	}

	return total
}

func rankWeight(t *Tour) float64    { return t.weight }
func fitnessWeight(t *Tour) float64 { return t.fitness }

// spin walks tours accumulating weight until the running sum reaches a
// uniform draw in [0, total).
func spin(tours []*Tour, total float64, weight func(*Tour) float64, rng Rand) *Tour {
	var (
		target = rng.Float64() * total
		acc    float64
	)
	for _, t := range tours {
		acc += weight(t)
		if acc >= target {
			return t
		}
	}

	return tours[len(tours)-1]
}
