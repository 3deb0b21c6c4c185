// Package workspace manages the per-user directory layout: configuration,
// the run-history database and exported report files.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "ProseCraft"

// Paths locates everything inside one workspace root.
type Paths struct {
	Base       string
	ConfigDir  string
	ConfigFile string
	HistoryDB  string
	ReportsDir string
}

func pathsAt(base string) Paths {
	return Paths{
		Base:       base,
		ConfigDir:  filepath.Join(base, "configs"),
		ConfigFile: filepath.Join(base, "configs", "config.yaml"),
		HistoryDB:  filepath.Join(base, "history", "runs.db"),
		ReportsDir: filepath.Join(base, "reports"),
	}
}

// EnsureDefault creates the workspace under the user's home directory.
func EnsureDefault() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base, tolerating an existing
// tree.
func EnsureAt(base string) (Paths, error) {
	p := pathsAt(base)
	for _, dir := range []string{p.ConfigDir, filepath.Dir(p.HistoryDB), p.ReportsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return p, nil
}
