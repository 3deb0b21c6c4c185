package config

import (
	"os"
	"path/filepath"
	"testing"

	"prosecraft/internal/beats"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StructureTemplate != "three-act" {
		t.Fatalf("unexpected default template %q", cfg.StructureTemplate)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level %q", cfg.Logging.Level)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.yaml")
	want := Defaults()
	want.StructureTemplate = "five-act"
	want.HistoryDB = "/tmp/runs.db"
	want.Logging.Level = "debug"

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.StructureTemplate != "five-act" || got.HistoryDB != "/tmp/runs.db" || got.Logging.Level != "debug" {
		t.Fatalf("round trip diverged: %+v", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTemplate, "heros-journey")
	t.Setenv(EnvHistoryDB, "/tmp/override.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StructureTemplate != "heros-journey" {
		t.Fatalf("env template override ignored: %q", cfg.StructureTemplate)
	}
	if cfg.HistoryDB != "/tmp/override.db" {
		t.Fatalf("env db override ignored: %q", cfg.HistoryDB)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("structure_template: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestTemplateResolution(t *testing.T) {
	cfg := Defaults()
	if tpl, ok := cfg.Template(""); !ok || tpl.Name != "three-act" {
		t.Fatalf("empty name should select the configured default, got %+v ok=%v", tpl, ok)
	}
	if _, ok := cfg.Template("no-such"); ok {
		t.Fatalf("unknown template should not resolve")
	}

	cfg.Templates = []beats.Template{{
		Name:  "novella",
		Beats: []beats.BeatDef{{Name: "Turn", ExpectedPercent: 50, Keywords: []string{"turned"}}},
	}}
	if tpl, ok := cfg.Template("novella"); !ok || len(tpl.Beats) != 1 {
		t.Fatalf("custom template should resolve, got %+v ok=%v", tpl, ok)
	}
}
