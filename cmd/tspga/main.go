// Package main provides the tspga CLI: it reads a TSPLIB instance and
// evolves a short closed tour with the genetic engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tspga/genetic"
	"github.com/katalvlaran/tspga/report"
	"github.com/katalvlaran/tspga/tsplib"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("tspga failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, rest, showVersion, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	if showVersion {
		fmt.Fprintf(stdout, "tspga %s (built %s)\n", Version, BuildTime)
		return nil
	}
	if len(rest) != 1 {
		return fmt.Errorf("want exactly one instance file, got %d arguments", len(rest))
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg)
	if err != nil {
		return err
	}

	inst, err := tsplib.Load(rest[0])
	if err != nil {
		return err
	}
	ps, err := inst.PointSet()
	if err != nil {
		return fmt.Errorf("%s: %w", rest[0], err)
	}
	logger.Info("instance loaded", "name", inst.Name, "cities", ps.Len(), "cached_distances", ps.Cached())

	// Cancellation is honoured between generations.
	reporters := []genetic.Reporter{
		genetic.ReporterFunc(func(ctx context.Context, _ genetic.Summary) error { return ctx.Err() }),
		report.NewLog(logger, slog.LevelDebug),
	}
	if !cfg.Quiet {
		reporters = append(reporters, report.NewText(stdout))
	}

	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		m, err := report.NewMetrics(reg)
		if err != nil {
			return err
		}
		reporters = append(reporters, m)
	}

	var history *report.History
	if cfg.HistoryDB != "" {
		history, err = report.OpenHistory(ctx, cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer history.Close()
		reporters = append(reporters, history)
	}

	opts := cfg.Options()
	eng, err := genetic.NewEngine(ps, opts, report.Multi(reporters...))
	if err != nil {
		return err
	}
	if history != nil {
		info := report.RunInfo{Instance: inst.Name, Cities: ps.Len(), Options: opts}
		if err = history.BeginRun(ctx, eng.RunID(), info); err != nil {
			return err
		}
	}

	logger.Info("run started", "run_id", eng.RunID(), "population_size", opts.PopulationSize,
		"max_generations", opts.MaxGenerations, "convergence_window", opts.ConvergenceWindow,
		"seed", opts.Seed, "workers", opts.Workers)
	start := time.Now()

	res, runErr := eng.Run(ctx)

	if history != nil {
		// The outcome is recorded even for an interrupted run.
		if err = history.FinishRun(context.WithoutCancel(ctx), res); err != nil {
			logger.Warn("history not finalized", "err", err)
		}
	}
	if reg != nil {
		if err = report.WriteTextfile(reg, cfg.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsFile, "err", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	best := res.Best
	logger.Info("run finished", "run_id", res.RunID, "state", res.State.String(),
		"generations", res.Generations, "best_length", best.Length(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if !cfg.Quiet {
		fmt.Fprintf(stdout, "Best tour (%s after %d generations, length %.4f):\n%s\n",
			res.State, res.Generations, best.Length(), joinIDs(best.CityIDs(ps)))
	}

	return nil
}

func newLogger(w io.Writer, cfg Config) (*slog.Logger, error) {
	lvl, err := cfg.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}
