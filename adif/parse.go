package adif

import (
	"bytes"
	"fmt"
	"os"

	"qsltracker/contact"
)

// ParseLog parses full ADIF file content into the record sequence. It never
// fails: malformed frames and droppable records come back as warnings, merged
// into input order. resolver may be nil to disable entity enrichment.
func ParseLog(content []byte, resolver EntityResolver) ([]contact.Record, []Warning) {
	tok := NewTokenizer(content)
	asm := NewAssembler(tok, resolver)

	var records []contact.Record
	for {
		rec, ok := asm.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	return records, mergeWarnings(tok.Warnings(), asm.Warnings())
}

// ParseFile reads and parses one ADIF log. The file handle is released before
// parsing begins; the whole content is held in memory for the duration of the
// run. An unreadable or binary file is fatal and returns no partial result.
func ParseFile(path string, resolver EntityResolver) ([]contact.Record, []Warning, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("adif: read log: %w", err)
	}
	if bytes.ContainsRune(content, 0) {
		return nil, nil, fmt.Errorf("adif: %s is not a text file", path)
	}
	records, warnings := ParseLog(content, resolver)
	return records, warnings, nil
}

// mergeWarnings interleaves two offset-ascending warning lists so the caller
// sees problems in the order they occur in the file.
func mergeWarnings(a, b []Warning) []Warning {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make([]Warning, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Offset <= b[j].Offset {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
