package adif

import (
	"strings"
	"testing"

	"qsltracker/contact"
)

// fakeResolver is a fixed-table EntityResolver for tests.
type fakeResolver struct {
	byCall    map[string][2]string // call prefix -> {code, country}
	byCountry map[string]string
}

func (f *fakeResolver) EntityForCallsign(call string) (string, string, bool) {
	for prefix, v := range f.byCall {
		if strings.HasPrefix(call, prefix) {
			return v[0], v[1], true
		}
	}
	return "", "", false
}

func (f *fakeResolver) EntityForCountry(name string) (string, bool) {
	code, ok := f.byCountry[strings.ToUpper(name)]
	return code, ok
}

const sampleLog = `ADIF export
<ADIF_VER:5>3.1.0
<PROGRAMID:6>Logger
<eoh>
<CALL:4>V51B <BAND:3>12M <DXCC:3>291 <COUNTRY:7>Namibia <MODE:2>CW <QSL_RCVD:1>Y <eor>
<CALL:5>JA1XY <BAND:3>12m <DXCC:3>339 <LOTW_QSL_RCVD:1>y <eor>
<CALL:5>ZS6AA <BAND:3>20m <DXCC:3>462 <eor>
`

func parseSample(t *testing.T, input string) ([]contact.Record, []Warning) {
	t.Helper()
	return ParseLog([]byte(input), nil)
}

func TestAssemblerSkipsHeader(t *testing.T) {
	records, _ := parseSample(t, sampleLog)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// Header fields (ADIF_VER, PROGRAMID) must not leak into the first record.
	if records[0].Callsign != "V51B" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestAssemblerHeaderlessFile(t *testing.T) {
	records, warnings := parseSample(t, "<CALL:4>K1AB<BAND:3>20m<eor>")
	if len(records) != 1 {
		t.Fatalf("a file without <eoh> must still yield records, got %d (warnings %v)", len(records), warnings)
	}
	if records[0].Callsign != "K1AB" || records[0].Band != "20m" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestAssemblerFieldMapping(t *testing.T) {
	records, _ := parseSample(t, sampleLog)
	r := records[0]
	if r.Band != "12m" {
		t.Errorf("band must normalize to lowercase, got %q", r.Band)
	}
	if r.Entity != "291" || r.Country != "Namibia" {
		t.Errorf("entity mapping wrong: %+v", r)
	}
	if !r.CardConfirmed || r.LoTWConfirmed {
		t.Errorf("expected card-only confirmation, got %+v", r)
	}
	// Sentinel comparison is case-insensitive: "y" confirms too.
	if !records[1].LoTWConfirmed {
		t.Errorf("lowercase sentinel must confirm, got %+v", records[1])
	}
	if records[2].Confirmed() {
		t.Errorf("record without flags must default to unconfirmed, got %+v", records[2])
	}
}

func TestAssemblerDuplicateTagLastWins(t *testing.T) {
	records, _ := parseSample(t, "<CALL:4>K1AB<BAND:3>20m<BAND:3>15m<eor>")
	if len(records) != 1 || records[0].Band != "15m" {
		t.Fatalf("last duplicate tag must win, got %+v", records)
	}
}

func TestAssemblerDropsRecordWithoutCall(t *testing.T) {
	records, warnings := parseSample(t, "<BAND:3>20m<DXCC:3>291<eor><CALL:4>K1AB<BAND:3>20m<eor>")
	if len(records) != 1 {
		t.Fatalf("record without CALL must be dropped, got %d records", len(records))
	}
	found := false
	for _, w := range warnings {
		if w.Kind == WarnIncompleteRecord {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an incomplete-record warning, got %v", warnings)
	}
}

func TestAssemblerMissingBandWarning(t *testing.T) {
	records, warnings := parseSample(t, "<CALL:4>K1AB<DXCC:3>291<eor>")
	if len(records) != 1 {
		t.Fatalf("missing band must not drop the record, got %d", len(records))
	}
	if records[0].Band != "" {
		t.Errorf("expected empty band, got %q", records[0].Band)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarnMissingBand {
		t.Fatalf("expected a missing-band warning, got %v", warnings)
	}
}

func TestAssemblerEntityEnrichment(t *testing.T) {
	resolver := &fakeResolver{
		byCall:    map[string][2]string{"V5": {"291", "Namibia"}},
		byCountry: map[string]string{"NAMIBIA": "291"},
	}

	// From COUNTRY tag when DXCC is absent.
	records, _ := ParseLog([]byte("<CALL:4>XX1A<BAND:3>12m<COUNTRY:7>Namibia<eor>"), resolver)
	if records[0].Entity != "291" {
		t.Errorf("expected entity from country name, got %+v", records[0])
	}

	// From callsign prefix when both DXCC and COUNTRY are absent.
	records, _ = ParseLog([]byte("<CALL:4>V51B<BAND:3>12m<eor>"), resolver)
	if records[0].Entity != "291" || records[0].Country != "Namibia" {
		t.Errorf("expected entity from callsign prefix, got %+v", records[0])
	}

	// The logged DXCC tag always wins over enrichment.
	records, _ = ParseLog([]byte("<CALL:4>V51B<BAND:3>12m<DXCC:3>460<eor>"), resolver)
	if records[0].Entity != "460" {
		t.Errorf("logged DXCC must win, got %+v", records[0])
	}
}

func TestAssemblerDuplicateRecordWarning(t *testing.T) {
	input := "<CALL:4>K1AB<BAND:3>20m<QSO_DATE:8>20250101<TIME_ON:4>1200<eor>" +
		"<CALL:4>K1AB<BAND:3>20m<QSO_DATE:8>20250101<TIME_ON:4>1200<eor>"
	records, warnings := parseSample(t, input)
	if len(records) != 2 {
		t.Fatalf("duplicate records are kept, got %d", len(records))
	}
	dups := 0
	for _, w := range warnings {
		if w.Kind == WarnDuplicateRecord {
			dups++
		}
	}
	if dups != 1 {
		t.Fatalf("expected exactly one duplicate-record warning, got %v", warnings)
	}
}

func TestAssemblerFieldsAfterFinalEORDiscarded(t *testing.T) {
	records, _ := parseSample(t, "<CALL:4>K1AB<BAND:3>20m<eor><CALL:4>W1XY<BAND:3>20m")
	if len(records) != 1 {
		t.Fatalf("trailing fields without <eor> are not a record, got %d", len(records))
	}
}
