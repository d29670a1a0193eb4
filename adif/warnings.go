package adif

import "fmt"

// WarningKind classifies a recoverable parse problem. None of these abort a
// run; they are accumulated so the caller can surface a count or a detail
// listing.
type WarningKind int

const (
	// WarnMalformedField marks a tag/length frame that could not be parsed.
	// The field is lost; the scan resumes at the next frame.
	WarnMalformedField WarningKind = iota
	// WarnIncompleteRecord marks a record dropped for a missing callsign.
	WarnIncompleteRecord
	// WarnMissingBand marks a record without a usable BAND value. The record
	// is kept for overall totals but excluded from band-scoped aggregation.
	WarnMissingBand
	// WarnDuplicateRecord marks a record whose identifying fields match an
	// earlier record in the same file. The record is kept; logging
	// applications occasionally write the same QSO twice.
	WarnDuplicateRecord
)

func (k WarningKind) String() string {
	switch k {
	case WarnMalformedField:
		return "malformed field"
	case WarnIncompleteRecord:
		return "incomplete record"
	case WarnMissingBand:
		return "missing band"
	case WarnDuplicateRecord:
		return "duplicate record"
	default:
		return "unknown"
	}
}

// Warning is one recoverable parse problem, positioned by byte offset into the
// input so it can be correlated with the source file.
type Warning struct {
	Kind   WarningKind
	Offset int
	Detail string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s at byte %d", w.Kind, w.Offset)
	}
	return fmt.Sprintf("%s at byte %d: %s", w.Kind, w.Offset, w.Detail)
}
