// Package contact defines the canonical logged-contact structure and helpers
// used across the analysis pipeline: confirmation classification, band
// normalization, and display ordering.
package contact

import "qsltracker/strutil"

// Record represents one logged radio contact (QSO) in canonical form.
// Records are constructed once by the ADIF assembler and never mutated.
type Record struct {
	Callsign  string // contacted station, uppercased (e.g., "V51B")
	Band      string // normalized band label (e.g., "12m"); empty when unknown
	Entity    string // DXCC entity code as logged or derived; empty when unknown
	Country   string // entity display name (e.g., "Namibia")
	Mode      string // operating mode (e.g., "CW", "FT8")
	Frequency string // frequency as logged, kept verbatim for display

	LoTWConfirmed bool // electronic confirmation matched (LOTW_QSL_RCVD = Y)
	CardConfirmed bool // paper QSL card received (QSL_RCVD = Y)
}

// Confirmed reports whether the contact is confirmed by any means.
func (r Record) Confirmed() bool {
	return r.LoTWConfirmed || r.CardConfirmed
}

// OnBand reports whether the record belongs to the given band label. The
// comparison is case-insensitive and tolerant of unnormalized input on either
// side.
func (r Record) OnBand(band string) bool {
	if r.Band == "" {
		return false
	}
	return strutil.NormalizeLower(r.Band) == NormalizeBand(band)
}

// EntityLabel returns the identifier used when sorting and displaying the
// record's entity: the country name when known, otherwise the numeric code.
func (r Record) EntityLabel() string {
	if r.Country != "" {
		return r.Country
	}
	return r.Entity
}
