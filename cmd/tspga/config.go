package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspga/genetic"
)

// Config is everything the CLI can be told, from a YAML file and flags.
// Flags win over the file; the file wins over the defaults.
type Config struct {
	PopulationSize     int     `yaml:"population_size"`
	MaxGenerations     int     `yaml:"max_generations"`
	ConvergenceWindow  int     `yaml:"convergence_window"`
	ConvergenceEpsilon float64 `yaml:"convergence_epsilon"`
	Seed               int64   `yaml:"seed"`
	Workers            int     `yaml:"workers"`
	Refill             bool    `yaml:"refill"`
	CheckInvariants    bool    `yaml:"check_invariants"`

	LogLevel    string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat   string `yaml:"log_format"` // text or json
	HistoryDB   string `yaml:"history_db"`
	MetricsFile string `yaml:"metrics_file"`
	Quiet       bool   `yaml:"quiet"`
}

func defaultConfig() Config {
	o := genetic.DefaultOptions()

	return Config{
		PopulationSize:     o.PopulationSize,
		MaxGenerations:     o.MaxGenerations,
		ConvergenceWindow:  o.ConvergenceWindow,
		ConvergenceEpsilon: o.ConvergenceEpsilon,
		Seed:               o.Seed,
		Workers:            o.Workers,
		Refill:             o.Refill,
		CheckInvariants:    o.CheckInvariants,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// Options projects the engine part of the configuration.
func (c Config) Options() genetic.Options {
	return genetic.Options{
		PopulationSize:     c.PopulationSize,
		MaxGenerations:     c.MaxGenerations,
		ConvergenceWindow:  c.ConvergenceWindow,
		ConvergenceEpsilon: c.ConvergenceEpsilon,
		Seed:               c.Seed,
		Workers:            c.Workers,
		Refill:             c.Refill,
		CheckInvariants:    c.CheckInvariants,
	}
}

// Validate checks the engine options and the logging settings.
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format %q: want text or json", c.LogFormat)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return lvl, nil
}

// loadConfigFile decodes path over cfg. Unknown keys are an error; an
// empty file leaves cfg untouched.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// bindFlags registers one flag per Config field, defaulting to the current
// value of cfg, plus -config and -version.
func bindFlags(fs *flag.FlagSet, cfg *Config, configPath *string, showVersion *bool) {
	fs.StringVar(configPath, "config", *configPath, "YAML configuration file")
	fs.BoolVar(showVersion, "version", false, "Show version information")

	fs.IntVar(&cfg.PopulationSize, "population-size", cfg.PopulationSize, "Initial population size")
	fs.IntVar(&cfg.MaxGenerations, "generations", cfg.MaxGenerations, "Maximum number of generations")
	fs.IntVar(&cfg.ConvergenceWindow, "convergence-window", cfg.ConvergenceWindow, "Stop after N generations without improvement (0 = disabled)")
	fs.Float64Var(&cfg.ConvergenceEpsilon, "convergence-epsilon", cfg.ConvergenceEpsilon, "Relative fitness tolerance for \"no improvement\"")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = use current time)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines used for fitness evaluation")
	fs.BoolVar(&cfg.Refill, "refill", cfg.Refill, "Top the population up with random tours every generation")
	fs.BoolVar(&cfg.CheckInvariants, "check-invariants", cfg.CheckInvariants, "Verify every offspring is a permutation")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	fs.StringVar(&cfg.HistoryDB, "history-db", cfg.HistoryDB, "SQLite file recording the run history")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this textfile when done")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Suppress the per-generation console report")
}

// parseConfig builds the effective Config: defaults, then the -config file
// if any, then flags. It returns the remaining positional arguments.
func parseConfig(args []string, stderr io.Writer) (Config, []string, bool, error) {
	var (
		cfg         = defaultConfig()
		configPath  string
		showVersion bool
	)
	fs := newFlagSet(stderr)
	bindFlags(fs, &cfg, &configPath, &showVersion)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, false, err
	}
	if configPath == "" {
		return cfg, fs.Args(), showVersion, nil
	}

	// Second pass: the file provides the defaults the flags override.
	cfg = defaultConfig()
	if err := loadConfigFile(configPath, &cfg); err != nil {
		return Config{}, nil, false, err
	}
	fs = newFlagSet(stderr)
	bindFlags(fs, &cfg, &configPath, &showVersion)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, false, err
	}

	return cfg, fs.Args(), showVersion, nil
}

func newFlagSet(stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("tspga", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: tspga [flags] <instance.tsp>")
		fs.PrintDefaults()
	}

	return fs
}
