// Package report - reporter fan-out.
package report

import (
	"context"

	"github.com/katalvlaran/tspga/genetic"
)

type multi []genetic.Reporter

// Multi returns a Reporter that forwards every Summary to each reporter in
// order and stops at the first error. Nil reporters are skipped.
func Multi(reporters ...genetic.Reporter) genetic.Reporter {
	m := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}

	return m
}

func (m multi) Report(ctx context.Context, s genetic.Summary) error {
	for _, r := range m {
		if err := r.Report(ctx, s); err != nil {
			return err
		}
	}

	return nil
}
