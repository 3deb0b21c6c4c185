package store

import (
	"path/filepath"
	"testing"

	"prosecraft/internal/engine"
)

func sampleReport(t *testing.T) engine.Report {
	t.Helper()
	text := "I walked into town with my basket.\n\nShe walked out of town with her dog and her doubts."
	return engine.BuildReport("Round Trip", text, engine.Options{})
}

func TestSaveAndListRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	rep := sampleReport(t)

	if err := SaveReport(dbPath, rep); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := ListRuns(dbPath, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != rep.RunID || got.Title != rep.Title {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.WordCount != rep.WordCount || got.OverallScore != rep.OverallScore {
		t.Fatalf("summary columns diverged from report: %+v", got)
	}
	if got.DominantPOV != rep.POV.DominantPOV {
		t.Fatalf("expected dominant POV %q, got %q", rep.POV.DominantPOV, got.DominantPOV)
	}
}

func TestFindingsPersisted(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	rep := sampleReport(t)
	if len(rep.Findings) == 0 {
		t.Fatalf("sample report should carry findings")
	}

	if err := SaveReport(dbPath, rep); err != nil {
		t.Fatalf("save: %v", err)
	}
	count, err := CountRows(dbPath, "findings")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(rep.Findings) {
		t.Fatalf("expected %d finding rows, got %d", len(rep.Findings), count)
	}
}

func TestLoadReportRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	rep := sampleReport(t)
	if err := SaveReport(dbPath, rep); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadReport(dbPath, rep.RunID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.RunID != rep.RunID || loaded.OverallScore != rep.OverallScore {
		t.Fatalf("round trip diverged: %+v vs %+v", loaded, rep)
	}
	if loaded.Readability.FleschReadingEase != rep.Readability.FleschReadingEase {
		t.Fatalf("nested metrics lost in round trip")
	}
}

func TestLoadReportUnknownRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	if _, err := LoadReport(dbPath, "no-such-run"); err == nil {
		t.Fatalf("expected an error for an unknown run")
	}
}

func TestListRunsEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	runs, err := ListRuns(dbPath, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}
