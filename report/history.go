// Package report - SQLite run history.
package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tspga/genetic"
)

// ErrHistoryClosed is returned by History methods after Close.
var ErrHistoryClosed = errors.New("report: history is closed")

// RunInfo describes a run when it is registered with BeginRun.
type RunInfo struct {
	Instance string // instance name, e.g. the TSPLIB NAME header
	Cities   int
	Options  genetic.Options
}

// History persists runs and their generation summaries in SQLite.
// Populations themselves are never stored. A History is safe for
// concurrent use.
type History struct {
	mu sync.RWMutex
	db *sql.DB
}

// OpenHistory opens (creating if needed) the database at path and ensures
// the schema exists. Use ":memory:" for a throwaway store.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	if path == "" {
		return nil, errors.New("report: history path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open history: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report: open history: %w", err)
	}
	if err = createHistoryTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report: create schema: %w", err)
	}

	return &History{db: db}, nil
}

func createHistoryTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			instance TEXT NOT NULL,
			cities INTEGER NOT NULL,
			population_size INTEGER NOT NULL,
			max_generations INTEGER NOT NULL,
			convergence_window INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			state TEXT,
			generations INTEGER,
			best_length REAL,
			best_tour TEXT
		);
		CREATE TABLE IF NOT EXISTS generations (
			run_id TEXT NOT NULL REFERENCES runs(id),
			generation INTEGER NOT NULL,
			best_fitness REAL NOT NULL,
			worst_fitness REAL NOT NULL,
			mean_fitness REAL NOT NULL,
			stddev_fitness REAL NOT NULL,
			best_length REAL NOT NULL,
			population_size INTEGER NOT NULL,
			unchanged INTEGER NOT NULL,
			PRIMARY KEY (run_id, generation)
		);
	`)
	return err
}

// BeginRun registers a run before its first generation is reported.
func (h *History) BeginRun(ctx context.Context, runID uuid.UUID, info RunInfo) error {
	db, err := h.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, instance, cities, population_size, max_generations,
			convergence_window, seed, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID.String(), info.Instance, info.Cities, info.Options.PopulationSize,
		info.Options.MaxGenerations, info.Options.ConvergenceWindow, info.Options.Seed,
		now())
	if err != nil {
		return fmt.Errorf("report: begin run %s: %w", runID, err)
	}

	return nil
}

// Report stores one generation summary. The run must have been registered
// with BeginRun.
func (h *History) Report(ctx context.Context, s genetic.Summary) error {
	db, err := h.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO generations (run_id, generation, best_fitness, worst_fitness,
			mean_fitness, stddev_fitness, best_length, population_size, unchanged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.RunID.String(), s.Generation, s.BestFitness, s.WorstFitness,
		s.MeanFitness, s.StdDevFitness, s.BestLength, s.PopulationSize, s.Unchanged)
	if err != nil {
		return fmt.Errorf("report: store generation %d of %s: %w", s.Generation, s.RunID, err)
	}

	return nil
}

// FinishRun records the outcome of a run: its terminal state, generation
// count and best tour as space-separated PointSet indices.
func (h *History) FinishRun(ctx context.Context, res genetic.Result) error {
	db, err := h.getDB()
	if err != nil {
		return err
	}

	var (
		bestLength sql.NullFloat64
		bestTour   sql.NullString
	)
	if res.Best != nil {
		bestLength = sql.NullFloat64{Float64: res.Best.Length(), Valid: true}
		bestTour = sql.NullString{String: joinInts(res.Best.Sequence()), Valid: true}
	}

	out, err := db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, state = ?, generations = ?, best_length = ?, best_tour = ?
		WHERE id = ?
	`, now(), res.State.String(), res.Generations, bestLength, bestTour, res.RunID.String())
	if err != nil {
		return fmt.Errorf("report: finish run %s: %w", res.RunID, err)
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("report: finish run %s: %w", res.RunID, sql.ErrNoRows)
	}

	return nil
}

// Generations returns the stored summaries of runID in generation order.
func (h *History) Generations(ctx context.Context, runID uuid.UUID) ([]genetic.Summary, error) {
	db, err := h.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT generation, best_fitness, worst_fitness, mean_fitness, stddev_fitness,
			best_length, population_size, unchanged
		FROM generations
		WHERE run_id = ?
		ORDER BY generation
	`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("report: query run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []genetic.Summary
	for rows.Next() {
		s := genetic.Summary{RunID: runID}
		if err = rows.Scan(&s.Generation, &s.BestFitness, &s.WorstFitness, &s.MeanFitness,
			&s.StdDevFitness, &s.BestLength, &s.PopulationSize, &s.Unchanged); err != nil {
			return nil, fmt.Errorf("report: scan run %s: %w", runID, err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("report: query run %s: %w", runID, err)
	}

	return out, nil
}

// Close releases the database. Further calls return ErrHistoryClosed.
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil

	return err
}

func (h *History) getDB() (*sql.DB, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.db == nil {
		return nil, ErrHistoryClosed
	}

	return h.db, nil
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
