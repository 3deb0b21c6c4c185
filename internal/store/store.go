// Package store persists analysis runs to a local sqlite history database so
// scores can be compared across drafts.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"prosecraft/internal/engine"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    title TEXT,
    generated_at TEXT,
    template TEXT,
    word_count INTEGER,
    overall_score INTEGER,
    reading_level TEXT,
    dominant_pov TEXT,
    report_json TEXT
);

CREATE TABLE IF NOT EXISTS findings (
    id INTEGER PRIMARY KEY,
    run_id TEXT,
    category TEXT,
    start_offset INTEGER,
    end_offset INTEGER,
    severity TEXT,
    description TEXT,
    excerpt TEXT
);
`

// RunSummary is one row of the history listing; the full report stays in the
// report_json column until asked for.
type RunSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Template     string    `json:"template"`
	WordCount    int       `json:"wordCount"`
	OverallScore int       `json:"overallScore"`
	ReadingLevel string    `json:"readingLevel"`
	DominantPOV  string    `json:"dominantPov"`
}

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SaveReport appends one run and its findings to the history database.
func SaveReport(dbPath string, rep engine.Report) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	blob, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO runs(id, title, generated_at, template, word_count, overall_score, reading_level, dominant_pov, report_json)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		rep.RunID,
		rep.Title,
		rep.GeneratedAt.Format(time.RFC3339),
		rep.Template,
		rep.WordCount,
		rep.OverallScore,
		rep.Readability.ReadingLevel,
		rep.POV.DominantPOV,
		string(blob),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range rep.Findings {
		if _, err := tx.Exec(
			`INSERT INTO findings(run_id, category, start_offset, end_offset, severity, description, excerpt) VALUES(?,?,?,?,?,?,?)`,
			rep.RunID,
			f.Category,
			f.Start,
			f.End,
			f.Severity,
			f.Description,
			f.Excerpt,
		); err != nil {
			return fmt.Errorf("insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListRuns returns run summaries, newest first.
func ListRuns(dbPath string, limit int) ([]RunSummary, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if limit <= 0 {
		limit = 50
	}
	rows, err := conn.Query(
		`SELECT id, title, generated_at, template, word_count, overall_score, reading_level, dominant_pov
		 FROM runs ORDER BY generated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	out := []RunSummary{}
	for rows.Next() {
		var rs RunSummary
		var generated string
		if err := rows.Scan(&rs.ID, &rs.Title, &generated, &rs.Template, &rs.WordCount,
			&rs.OverallScore, &rs.ReadingLevel, &rs.DominantPOV); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rs.GeneratedAt, err = time.Parse(time.RFC3339, generated)
		if err != nil {
			return nil, fmt.Errorf("parse generated_at: %w", err)
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

// LoadReport restores the full report for one run.
func LoadReport(dbPath, runID string) (engine.Report, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return engine.Report{}, err
	}
	defer conn.Close()

	var blob string
	err = conn.QueryRow(`SELECT report_json FROM runs WHERE id = ?`, runID).Scan(&blob)
	if err == sql.ErrNoRows {
		return engine.Report{}, fmt.Errorf("run %q not found", runID)
	}
	if err != nil {
		return engine.Report{}, fmt.Errorf("query run: %w", err)
	}

	var rep engine.Report
	if err := json.Unmarshal([]byte(blob), &rep); err != nil {
		return engine.Report{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return rep, nil
}

// CountRows reports the row count of one table, used by tests and the CLI
// status output.
func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
