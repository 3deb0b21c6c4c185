package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prosecraft/internal/engine"
)

func TestEnsureAtCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")
	p, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, dir := range []string{p.ConfigDir, filepath.Dir(p.HistoryDB), p.ReportsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
	if p.ConfigFile != filepath.Join(base, "configs", "config.yaml") {
		t.Fatalf("unexpected config path %s", p.ConfigFile)
	}
}

func TestEnsureAtIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ws")
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
}

func TestExportReport(t *testing.T) {
	p, err := EnsureAt(filepath.Join(t.TempDir(), "ws"))
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	rep := engine.BuildReport("My Draft", "I waited by the door. I knocked twice.", engine.Options{})

	path, err := ExportReport(p.ReportsDir, rep)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported report: %v", err)
	}
	if !strings.Contains(string(raw), rep.RunID) {
		t.Fatalf("exported report missing run ID")
	}
	if !strings.HasSuffix(path, rep.RunID+".json") {
		t.Fatalf("unexpected report filename %s", path)
	}
}

func TestTitleHashStable(t *testing.T) {
	if titleHash("  My Draft ") != titleHash("my draft") {
		t.Fatalf("hash should ignore case and surrounding space")
	}
	if titleHash("a") == titleHash("b") {
		t.Fatalf("distinct titles should hash differently")
	}
	if len(titleHash("")) != 12 {
		t.Fatalf("blank title should still hash")
	}
}
