package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qsltracker/aggregate"
)

func sampleSummaries() []aggregate.BandSummary {
	return []aggregate.BandSummary{
		{
			Band: "12m",
			UnconfirmedEntities: []aggregate.Entity{
				{Code: "165", Name: "Mauritius", Contacts: 1},
				{Code: "291", Name: "Namibia", Contacts: 3},
			},
			TotalContacts:      42,
			TotalLoTWConfirmed: 10,
			TotalCardConfirmed: 5,
		},
	}
}

func TestWriteText(t *testing.T) {
	rep := New("log.adi", sampleSummaries(), "42 records, no warnings")
	var buf bytes.Buffer
	if err := rep.WriteText(&buf); err != nil {
		t.Fatalf("write text: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Unconfirmed DXCC entities on 12m",
		"Namibia",
		"291",
		"Total contacts: 42",
		"LoTW confirmed: 10",
		"Card confirmed: 5",
		"Source: log.adi",
		"Parse: 42 records, no warnings",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	// Mauritius sorts before Namibia and must appear first.
	if strings.Index(out, "Mauritius") > strings.Index(out, "Namibia") {
		t.Error("rows not in summary order")
	}
}

func TestWriteHTML(t *testing.T) {
	rep := New("log.adi", sampleSummaries(), "")
	var buf bytes.Buffer
	if err := rep.WriteHTML(&buf); err != nil {
		t.Fatalf("write html: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<title>QSL Confirmation Report</title>", "<td>Namibia</td>", "<h2>12m</h2>", "log.adi"} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	rep := New("log.adi", sampleSummaries(), "")
	var buf bytes.Buffer
	if err := rep.WriteJSON(&buf); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded.SourceFile != "log.adi" || len(decoded.Summaries) != 1 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
	if decoded.Summaries[0].UnconfirmedEntities[1].Name != "Namibia" {
		t.Fatalf("entity rows lost in round trip: %+v", decoded.Summaries[0])
	}
}

func TestSaveTextCreatesParentDir(t *testing.T) {
	rep := New("log.adi", sampleSummaries(), "")
	path := filepath.Join(t.TempDir(), "out", "report.txt")
	if err := rep.SaveText(path); err != nil {
		t.Fatalf("save text: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "Namibia") {
		t.Error("saved report missing entity rows")
	}
}
