// Package stats derives behavioral and financial statistics from the
// canonical event log. The log is loaded once into in-memory indices (hand →
// ordered events) and every metric is a pure aggregation pass over them, so
// results can be recomputed at any time.
package stats

import (
	"math"
	"sort"

	"github.com/lox/handtrack/internal/store"
)

// Analyzer answers statistical queries over one snapshot of the event log.
type Analyzer struct {
	events     []store.Event
	handEvents map[string][]store.Event
}

// NewAnalyzer indexes a snapshot of the event log. Events are re-sorted by
// sequence number so callers may pass them in any order.
func NewAnalyzer(events []store.Event) *Analyzer {
	sorted := make([]store.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	byHand := make(map[string][]store.Event)
	for _, e := range sorted {
		byHand[e.HandID] = append(byHand[e.HandID], e)
	}

	return &Analyzer{events: sorted, handEvents: byHand}
}

// round2 rounds to two decimal places, the precision every percentage in the
// tracker is reported at.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// pct is count/total as a rounded percentage, zero when total is zero.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}
