package stats

import (
	"strings"
	"testing"

	"qsltracker/adif"
)

func TestTrackerCounts(t *testing.T) {
	tr := NewTracker()
	tr.AddRecords(3)
	tr.AddWarnings([]adif.Warning{
		{Kind: adif.WarnMalformedField},
		{Kind: adif.WarnMalformedField},
		{Kind: adif.WarnMissingBand},
	})

	if got := tr.Records(); got != 3 {
		t.Errorf("Records = %d, want 3", got)
	}
	if got := tr.WarningCount(); got != 3 {
		t.Errorf("WarningCount = %d, want 3", got)
	}
	if got := tr.CountByKind(adif.WarnMalformedField); got != 2 {
		t.Errorf("malformed count = %d, want 2", got)
	}
	if got := tr.CountByKind(adif.WarnIncompleteRecord); got != 0 {
		t.Errorf("incomplete count = %d, want 0", got)
	}
}

func TestTrackerSummary(t *testing.T) {
	tr := NewTracker()
	tr.AddRecords(5)
	if got := tr.Summary(); got != "5 records, no warnings" {
		t.Errorf("clean summary = %q", got)
	}

	tr.AddWarnings([]adif.Warning{{Kind: adif.WarnMissingBand}})
	got := tr.Summary()
	if !strings.Contains(got, "1 warnings") || !strings.Contains(got, "missing band: 1") {
		t.Errorf("summary = %q", got)
	}
}
