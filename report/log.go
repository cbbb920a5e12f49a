// Package report - slog sink.
package report

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/tspga/genetic"
)

// Log emits one slog record per generation at a fixed level.
type Log struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLog returns a Log sink. A nil logger means slog.Default().
func NewLog(logger *slog.Logger, level slog.Level) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger, level: level}
}

// Report never fails.
func (l *Log) Report(ctx context.Context, s genetic.Summary) error {
	l.logger.LogAttrs(ctx, l.level, "generation",
		slog.String("run_id", s.RunID.String()),
		slog.Int("generation", s.Generation),
		slog.Float64("best_fitness", s.BestFitness),
		slog.Float64("worst_fitness", s.WorstFitness),
		slog.Float64("mean_fitness", s.MeanFitness),
		slog.Float64("stddev_fitness", s.StdDevFitness),
		slog.Float64("best_length", s.BestLength),
		slog.Int("population", s.PopulationSize),
		slog.Int("unchanged", s.Unchanged),
	)

	return nil
}
