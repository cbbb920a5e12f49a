// Package report - plain-text progress lines.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tspga/genetic"
)

// Separator closes every Text block.
const Separator = "-------------------------------------------------------------------"

// Text writes one block per generation:
//
//	Generation 3 - Best Fitness: 0.00012
//	Generation 3 - Worst Fitness: 8.1e-05
//	Generation 3 - Average Fitness: 0.0001
//	Generation 3 - Standard Deviation: 1.2e-05
//	-------------------------------------------------------------------
type Text struct {
	w io.Writer
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Report writes s as a single Write call.
func (t *Text) Report(_ context.Context, s genetic.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Generation %d - Best Fitness: %v\n", s.Generation, s.BestFitness)
	fmt.Fprintf(&b, "Generation %d - Worst Fitness: %v\n", s.Generation, s.WorstFitness)
	fmt.Fprintf(&b, "Generation %d - Average Fitness: %v\n", s.Generation, s.MeanFitness)
	fmt.Fprintf(&b, "Generation %d - Standard Deviation: %v\n", s.Generation, s.StdDevFitness)
	b.WriteString(Separator)
	b.WriteByte('\n')

	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}

	return nil
}
