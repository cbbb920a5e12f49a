// Package genetic - per-generation records and the sink interface.
package genetic

import (
	"context"

	"github.com/google/uuid"
)

// Summary is the record emitted once per generation.
//
// Fields:
//   - RunID          - identifier shared by every record of one run.
//   - Generation     - 1-based generation number.
//   - BestFitness … StdDevFitness - fitness distribution of the new
//     generation (population standard deviation).
//   - BestLength     - cyclic length of the best Tour (1 / BestFitness).
//   - PopulationSize - actual size of the new generation.
//   - Unchanged      - consecutive generations whose best fitness matched
//     the previous elite within the relative ConvergenceEpsilon.
type Summary struct {
	RunID          uuid.UUID
	Generation     int
	BestFitness    float64
	WorstFitness   float64
	MeanFitness    float64
	StdDevFitness  float64
	BestLength     float64
	PopulationSize int
	Unchanged      int
}

// Reporter receives every Summary in generation order. A non-nil error
// aborts the run.
type Reporter interface {
	Report(ctx context.Context, s Summary) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, s Summary) error

// Report calls f(ctx, s).
func (f ReporterFunc) Report(ctx context.Context, s Summary) error { return f(ctx, s) }
