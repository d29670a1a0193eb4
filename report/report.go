// Package report renders aggregation results for the export and print
// collaborators: fixed-width text, a printable HTML page, and JSON. The
// rendered rows are exactly what the display shows; exports never re-derive
// aggregation results.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"qsltracker/aggregate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report bundles one run's aggregation output with its provenance for export.
type Report struct {
	SourceFile   string                  `json:"source_file"`
	GeneratedAt  time.Time               `json:"generated_at"`
	ParseSummary string                  `json:"parse_summary,omitempty"`
	Summaries    []aggregate.BandSummary `json:"summaries"`
}

// New builds a report over the given summaries. sourceFile is used verbatim
// in headers; pass the base name if the full path should not appear.
func New(sourceFile string, summaries []aggregate.BandSummary, parseSummary string) *Report {
	return &Report{
		SourceFile:   sourceFile,
		GeneratedAt:  time.Now(),
		ParseSummary: parseSummary,
		Summaries:    summaries,
	}
}

// WriteText renders the fixed-width text form.
func (r *Report) WriteText(w io.Writer) error {
	for i, s := range r.Summaries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeBandText(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nSource: %s\nGenerated: %s\n",
		r.SourceFile, r.GeneratedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}
	if r.ParseSummary != "" {
		_, err = fmt.Fprintf(w, "Parse: %s\n", r.ParseSummary)
	}
	return err
}

func writeBandText(w io.Writer, s aggregate.BandSummary) error {
	if _, err := fmt.Fprintf(w, "Unconfirmed DXCC entities on %s\n\n", s.Band); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-28s %-6s %6s\n", "COUNTRY", "DXCC", "QSOS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "---------------------------- ------ ------"); err != nil {
		return err
	}
	for _, e := range s.UnconfirmedEntities {
		if _, err := fmt.Fprintf(w, "%-28s %-6s %6d\n", e.Label(), e.Code, e.Contacts); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal contacts: %s   LoTW confirmed: %s   Card confirmed: %s\n",
		humanize.Comma(int64(s.TotalContacts)),
		humanize.Comma(int64(s.TotalLoTWConfirmed)),
		humanize.Comma(int64(s.TotalCardConfirmed)))
	return err
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// SaveText writes the text form to path, creating parent directories.
func (r *Report) SaveText(path string) error {
	return r.save(path, r.WriteText)
}

// SaveHTML writes the HTML form to path, creating parent directories.
func (r *Report) SaveHTML(path string) error {
	return r.save(path, r.WriteHTML)
}

// SaveJSON writes the JSON form to path, creating parent directories.
func (r *Report) SaveJSON(path string) error {
	return r.save(path, r.WriteJSON)
}

func (r *Report) save(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: ensure dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>QSL Confirmation Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { border-bottom: 2px solid #333; padding-bottom: 10px; }
.meta { margin-bottom: 20px; padding: 10px; background-color: #f5f5f5; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th, td { border: 1px solid #ddd; padding: 6px; text-align: left; }
th { background-color: #f2f2f2; }
tr:nth-child(even) { background-color: #f9f9f9; }
.totals { font-weight: bold; }
@media print { body { margin: 0.5in; } .meta { background-color: transparent; } }
</style>
</head>
<body>
<h1>Unconfirmed DXCC Entities</h1>
<div class="meta">
<strong>Source:</strong> {{.SourceFile}}<br>
<strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
{{- if .ParseSummary}}<br><strong>Parse:</strong> {{.ParseSummary}}{{end}}
</div>
{{- range .Summaries}}
<h2>{{.Band}}</h2>
<table>
<thead><tr><th>Country</th><th>DXCC</th><th>QSOs</th></tr></thead>
<tbody>
{{- range .UnconfirmedEntities}}
<tr><td>{{.Label}}</td><td>{{.Code}}</td><td>{{.Contacts}}</td></tr>
{{- end}}
</tbody>
</table>
<p class="totals">Contacts: {{.TotalContacts}} &middot; LoTW confirmed: {{.TotalLoTWConfirmed}} &middot; Card confirmed: {{.TotalCardConfirmed}}</p>
{{- end}}
</body>
</html>
`))

// WriteHTML renders the printable HTML form.
func (r *Report) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, r)
}
