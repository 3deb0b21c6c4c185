// Package log owns the process-wide structured logger. Output goes to stderr
// as text; when a file path is configured the same records also land in a
// size-rotated log file.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment overrides, applied on top of whatever Init receives.
const (
	envLevel = "PROSECRAFT_LOG_LEVEL"
	envFile  = "PROSECRAFT_LOG_FILE"
)

type Options struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	FilePath   string `yaml:"file"`        // empty disables the rotating file sink
	MaxSizeMB  int    `yaml:"max_size_mb"` // rotation threshold per file
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 30,
	}
}

var (
	mu     sync.Mutex
	root   = slog.New(slog.NewTextHandler(os.Stderr, nil))
	closer io.Closer
)

// Init installs the process logger. Safe to call more than once; the previous
// file sink, if any, is closed first.
func Init(opts Options) error {
	if v := os.Getenv(envLevel); v != "" {
		opts.Level = v
	}
	if v := os.Getenv(envFile); v != "" {
		opts.FilePath = v
	}
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
		closer = nil
	}

	w := io.Writer(os.Stderr)
	if opts.FilePath != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		closer = lj
		w = io.MultiWriter(os.Stderr, lj)
	}
	root = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// L returns the current process logger.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root
}

// WithComponent returns the process logger tagged with a component name.
func WithComponent(name string) *slog.Logger {
	return L().With("component", name)
}

// Close flushes and closes the rotating file sink.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
