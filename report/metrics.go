// Package report - Prometheus sink and textfile export.
package report

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tspga/genetic"
)

// Metrics mirrors the latest Summary into Prometheus collectors.
// Collectors are safe for concurrent scraping while the run progresses.
type Metrics struct {
	generation  prometheus.Gauge
	best        prometheus.Gauge
	worst       prometheus.Gauge
	mean        prometheus.Gauge
	stddev      prometheus.Gauge
	bestLength  prometheus.Gauge
	population  prometheus.Gauge
	generations prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
//
// Errors: the registration error (e.g. prometheus.AlreadyRegisteredError
// when two Metrics share a registry).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}
	m := &Metrics{
		generation: gauge("tspga_generation", "Number of the last completed generation."),
		best:       gauge("tspga_best_fitness", "Best fitness of the last generation."),
		worst:      gauge("tspga_worst_fitness", "Worst fitness of the last generation."),
		mean:       gauge("tspga_mean_fitness", "Mean fitness of the last generation."),
		stddev:     gauge("tspga_stddev_fitness", "Population standard deviation of fitness in the last generation."),
		bestLength: gauge("tspga_best_length", "Cyclic length of the best tour."),
		population: gauge("tspga_population_size", "Size of the last generation."),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tspga_generations_total",
			Help: "Generations produced since start.",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.generation, m.best, m.worst, m.mean, m.stddev, m.bestLength, m.population, m.generations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("report: register metrics: %w", err)
		}
	}

	return m, nil
}

// Report updates every collector; it never fails.
func (m *Metrics) Report(_ context.Context, s genetic.Summary) error {
	m.generation.Set(float64(s.Generation))
	m.best.Set(s.BestFitness)
	m.worst.Set(s.WorstFitness)
	m.mean.Set(s.MeanFitness)
	m.stddev.Set(s.StdDevFitness)
	m.bestLength.Set(s.BestLength)
	m.population.Set(float64(s.PopulationSize))
	m.generations.Inc()

	return nil
}

// WriteTextfile gathers g and writes it to path in the Prometheus text
// exposition format for the node-exporter textfile collector. The file is
// replaced atomically, so a collector never reads a partial file.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("report: textfile %s: %w", path, err)
	}

	return nil
}
