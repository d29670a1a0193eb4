// Package recorder persists one row per analysis run to SQLite for offline
// trend tracking ("how many entities were still unconfirmed last month").
// It is write-only telemetry: aggregation never reads it, and a recorder
// failure never fails a run.
package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"qsltracker/aggregate"
)

// Recorder appends run summaries into a SQLite database.
type Recorder struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema exists.
func New(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("recorder: ensure dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db}, nil
}

func initSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ts INTEGER NOT NULL,
    source_file TEXT,
    band TEXT,
    total_contacts INTEGER,
    lotw_confirmed INTEGER,
    card_confirmed INTEGER,
    unconfirmed_entities INTEGER
);
CREATE INDEX IF NOT EXISTS idx_runs_band_ts ON runs(band, ts);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("recorder: init schema: %w", err)
	}
	return nil
}

// Record appends one run's summaries. Best-effort: the first insert error is
// returned, but earlier rows stay committed.
func (r *Recorder) Record(sourceFile string, summaries []aggregate.BandSummary) error {
	if r == nil || r.db == nil {
		return nil
	}
	ts := time.Now().UTC().Unix()
	for _, s := range summaries {
		_, err := r.db.Exec(
			`INSERT INTO runs(ts, source_file, band, total_contacts, lotw_confirmed, card_confirmed, unconfirmed_entities)
			 VALUES(?,?,?,?,?,?,?)`,
			ts, sourceFile, s.Band, s.TotalContacts, s.TotalLoTWConfirmed, s.TotalCardConfirmed,
			len(s.UnconfirmedEntities),
		)
		if err != nil {
			return fmt.Errorf("recorder: insert run: %w", err)
		}
	}
	return nil
}

// RunCount returns the number of recorded runs for a band ("" counts all).
func (r *Recorder) RunCount(band string) (int, error) {
	var n int
	var err error
	if band == "" {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	} else {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE band = ?`, band).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("recorder: count runs: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (r *Recorder) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
