// Package numbering computes the hierarchical display labels for
// navigation entries: examples count "1. ", "2. ", ... and
// sub-examples count "1.1 ", "1.2 " under their parent example.
package numbering

import (
	"fmt"

	"docpane/internal/domain"
)

// CounterState holds the two counters threaded through one traversal.
// The example counter never resets within a pass; the subexample
// counter resets to zero every time an example is seen.
type CounterState struct {
	Example    int
	Subexample int
}

// Next advances the state for one entry and returns its label.
// Sections and plain links carry no number and leave both counters
// untouched. A subexample before any example labels as "0.n "; that
// is accepted input, not an error; well-formedness is the caller's
// problem.
func (c *CounterState) Next(kind domain.EntryKind) string {
	switch kind {
	case domain.KindExample:
		c.Example++
		c.Subexample = 0
		return fmt.Sprintf("%d. ", c.Example)
	case domain.KindSubexample:
		c.Subexample++
		return fmt.Sprintf("%d.%d ", c.Example, c.Subexample)
	default:
		return ""
	}
}

// Labels computes a display label for every entry in document order.
// The returned slice is index-aligned with entries. Each call starts
// from fresh counter state, so re-running on the same sequence always
// produces the same labels.
func Labels(entries []domain.NavEntry) []string {
	labels := make([]string, len(entries))
	var state CounterState
	for i, entry := range entries {
		labels[i] = state.Next(entry.Kind)
	}
	return labels
}
