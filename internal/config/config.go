// Package config loads the user-editable YAML configuration. Environment
// variables act as read-only overrides at runtime and never get written back.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"prosecraft/internal/beats"
	"prosecraft/internal/log"
)

// Env var names used as overrides.
const (
	EnvTemplate  = "PROSECRAFT_TEMPLATE"
	EnvHistoryDB = "PROSECRAFT_HISTORY_DB"
)

// Config is persisted as YAML in the workspace config directory.
// config_version bumps when the structure changes incompatibly.
type Config struct {
	ConfigVersion     int              `yaml:"config_version"`
	StructureTemplate string           `yaml:"structure_template"`
	HistoryDB         string           `yaml:"history_db"`
	Logging           log.Options      `yaml:"logging"`
	Templates         []beats.Template `yaml:"templates"` // user-defined structure templates
}

func Defaults() Config {
	return Config{
		ConfigVersion:     1,
		StructureTemplate: "three-act",
		Logging:           log.DefaultOptions(),
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvTemplate); v != "" {
		cfg.StructureTemplate = v
	}
	if v := os.Getenv(EnvHistoryDB); v != "" {
		cfg.HistoryDB = v
	}
}

// Template resolves a structure template by name: user-defined templates from
// the config file shadow the built-ins. An empty name selects the configured
// default.
func (c Config) Template(name string) (beats.Template, bool) {
	if name == "" {
		name = c.StructureTemplate
	}
	for _, t := range c.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return beats.Builtin(name)
}
