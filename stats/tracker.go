// Package stats tracks per-run parse counters for display in the status line
// and the export footer.
package stats

import (
	"fmt"
	"strings"
	"sync/atomic"

	"qsltracker/adif"
)

// Tracker counts parse outcomes for one run. Counters are atomic so the UI
// can read a snapshot while a parse is still appending warnings.
type Tracker struct {
	records    atomic.Uint64
	byKind     [4]atomic.Uint64 // indexed by adif.WarningKind
	otherWarns atomic.Uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// AddRecords notes n successfully assembled records.
func (t *Tracker) AddRecords(n int) {
	if n > 0 {
		t.records.Add(uint64(n))
	}
}

// AddWarnings folds a warning list into the per-kind counters.
func (t *Tracker) AddWarnings(warnings []adif.Warning) {
	for _, w := range warnings {
		if int(w.Kind) < len(t.byKind) {
			t.byKind[w.Kind].Add(1)
		} else {
			t.otherWarns.Add(1)
		}
	}
}

// Records returns the assembled-record count.
func (t *Tracker) Records() uint64 {
	return t.records.Load()
}

// WarningCount returns the total number of warnings of every kind. No warning
// is excluded from this count.
func (t *Tracker) WarningCount() uint64 {
	total := t.otherWarns.Load()
	for i := range t.byKind {
		total += t.byKind[i].Load()
	}
	return total
}

// CountByKind returns the number of warnings of one kind.
func (t *Tracker) CountByKind(kind adif.WarningKind) uint64 {
	if int(kind) >= len(t.byKind) {
		return 0
	}
	return t.byKind[kind].Load()
}

// Summary renders a one-line digest, e.g.
// "142 records, 3 warnings (malformed field: 2, missing band: 1)".
func (t *Tracker) Summary() string {
	total := t.WarningCount()
	if total == 0 {
		return fmt.Sprintf("%d records, no warnings", t.records.Load())
	}
	var parts []string
	for i := range t.byKind {
		if n := t.byKind[i].Load(); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", adif.WarningKind(i), n))
		}
	}
	return fmt.Sprintf("%d records, %d warnings (%s)",
		t.records.Load(), total, strings.Join(parts, ", "))
}
