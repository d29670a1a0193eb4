package adif

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "nope.adi"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseFileRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.adi")
	if err := os.WriteFile(path, []byte("<CALL:4>K1\x00AB<eor>"), 0o644); err != nil {
		t.Fatal(err)
	}
	records, _, err := ParseFile(path, nil)
	if err == nil {
		t.Fatal("expected an error for binary content")
	}
	if records != nil {
		t.Fatalf("no partial results on a fatal error, got %v", records)
	}
}

func TestParseFileReadsLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.adi")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}
	records, warnings, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if len(warnings) != 0 {
		t.Fatalf("clean log must produce no warnings, got %v", warnings)
	}
}

func TestWarningsMergedInInputOrder(t *testing.T) {
	// A malformed frame (tokenizer warning) before a dropped record
	// (assembler warning): the merged list must preserve file order.
	input := "<DXCC:3XYZ><BAND:3>20m<eor><CALL:4>K1AB<BAND:3>20m<eor>"
	_, warnings := ParseLog([]byte(input), nil)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if warnings[0].Kind != WarnMalformedField || warnings[1].Kind != WarnIncompleteRecord {
		t.Fatalf("warnings out of order: %v", warnings)
	}
	if warnings[0].Offset > warnings[1].Offset {
		t.Fatalf("offsets out of order: %v", warnings)
	}
}
