package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prosecraft/internal/engine"
)

// ExportReport writes the full report as indented JSON into the workspace
// reports directory. The filename combines a stable title hash with the run
// ID so repeated runs of the same manuscript sit side by side.
func ExportReport(reportsDir string, rep engine.Report) (string, error) {
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	name := fmt.Sprintf("%s-%s.json", titleHash(rep.Title), rep.RunID)
	path := filepath.Join(reportsDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// titleHash derives a short stable identifier from a manuscript title.
func titleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	if trimmed == "" {
		trimmed = "untitled"
	}
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}
