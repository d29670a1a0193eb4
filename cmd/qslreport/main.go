package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"qsltracker/adif"
	"qsltracker/aggregate"
	"qsltracker/config"
	"qsltracker/contact"
	"qsltracker/cty"
	"qsltracker/recorder"
	"qsltracker/report"
	"qsltracker/stats"
	"qsltracker/ui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	logPath := flag.String("log", "", "path to ADIF log file (overrides config)")
	band := flag.String("band", "", "band to analyze (e.g. 12m); empty = all bands")
	ctyPath := flag.String("cty", "", "path to cty.plist for DXCC enrichment (overrides config)")
	exportText := flag.String("export-text", "", "write fixed-width text report to this path")
	exportHTML := flag.String("export-html", "", "write printable HTML report to this path")
	exportJSON := flag.String("export-json", "", "write JSON report to this path")
	noUI := flag.Bool("no-ui", false, "print the report instead of starting the terminal UI")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("qslreport: %v", err)
		}
		cfg = loaded
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if *band != "" {
		cfg.Log.DefaultBand = *band
	}
	if *ctyPath != "" {
		cfg.CTY.Path = *ctyPath
	}
	if *exportText != "" {
		cfg.Export.TextPath = *exportText
	}
	if *exportHTML != "" {
		cfg.Export.HTMLPath = *exportHTML
	}
	if *exportJSON != "" {
		cfg.Export.JSONPath = *exportJSON
	}
	if cfg.Log.Path == "" {
		fmt.Fprintln(os.Stderr, "usage: qslreport -log <file.adi> [-band 12m] [-cty cty.plist]")
		os.Exit(2)
	}

	var resolver adif.EntityResolver
	if cfg.CTY.Path != "" {
		db, err := cty.Load(cfg.CTY.Path)
		if err != nil {
			log.Fatalf("qslreport: %v", err)
		}
		log.Printf("qslreport: loaded CTY database with %d entries", db.Size())
		resolver = db
	}

	records, warnings, err := adif.ParseFile(cfg.Log.Path, resolver)
	if err != nil {
		log.Fatalf("qslreport: %v", err)
	}

	tracker := stats.NewTracker()
	tracker.AddRecords(len(records))
	tracker.AddWarnings(warnings)

	summaries := selectSummaries(records, cfg.Log.DefaultBand)
	rep := report.New(filepath.Base(cfg.Log.Path), summaries, tracker.Summary())

	if err := runExports(cfg, rep); err != nil {
		log.Fatalf("qslreport: %v", err)
	}
	if cfg.Recorder.Enabled {
		recordRun(cfg.Recorder.DBPath, rep)
	}

	if *noUI || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := rep.WriteText(os.Stdout); err != nil {
			log.Fatalf("qslreport: %v", err)
		}
		return
	}

	bands := aggregate.Bands(records)
	if cfg.Log.DefaultBand != "" {
		bands = frontBand(bands, cfg.Log.DefaultBand)
	}
	viewer := ui.NewViewer(records, bands, ui.Options{
		EnableMouse: cfg.UI.EnableMouse,
		ShowCodes:   cfg.UI.ShowCodes,
		ParseLine:   tracker.Summary(),
		SourceFile:  filepath.Base(cfg.Log.Path),
	})
	if err := viewer.Run(); err != nil {
		log.Fatalf("qslreport: ui: %v", err)
	}
}

// selectSummaries summarizes either the one requested band or every band
// present in the log.
func selectSummaries(records []contact.Record, band string) []aggregate.BandSummary {
	if band != "" {
		return []aggregate.BandSummary{aggregate.Summarize(records, band)}
	}
	return aggregate.Overview(records)
}

func runExports(cfg *config.Config, rep *report.Report) error {
	if cfg.Export.TextPath != "" {
		if err := rep.SaveText(cfg.Export.TextPath); err != nil {
			return err
		}
		log.Printf("qslreport: wrote %s", cfg.Export.TextPath)
	}
	if cfg.Export.HTMLPath != "" {
		if err := rep.SaveHTML(cfg.Export.HTMLPath); err != nil {
			return err
		}
		log.Printf("qslreport: wrote %s", cfg.Export.HTMLPath)
	}
	if cfg.Export.JSONPath != "" {
		if err := rep.SaveJSON(cfg.Export.JSONPath); err != nil {
			return err
		}
		log.Printf("qslreport: wrote %s", cfg.Export.JSONPath)
	}
	return nil
}

// recordRun persists run telemetry; failures are logged, never fatal.
func recordRun(dbPath string, rep *report.Report) {
	rec, err := recorder.New(dbPath)
	if err != nil {
		log.Printf("qslreport: recorder disabled: %v", err)
		return
	}
	defer rec.Close()
	if err := rec.Record(rep.SourceFile, rep.Summaries); err != nil {
		log.Printf("qslreport: recorder: %v", err)
	}
}

// frontBand moves band to the front of bands so the UI selects it first.
func frontBand(bands []string, band string) []string {
	norm := contact.NormalizeBand(band)
	for i, b := range bands {
		if b == norm {
			reordered := make([]string, 0, len(bands))
			reordered = append(reordered, b)
			reordered = append(reordered, bands[:i]...)
			reordered = append(reordered, bands[i+1:]...)
			return reordered
		}
	}
	return bands
}
