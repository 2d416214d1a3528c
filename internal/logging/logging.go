// Package logging provides categorized structured logging for bananaverify,
// backed by zap. Each pipeline stage logs under its own named category so a
// noisy stage can be read (or grepped) in isolation. Before Init the
// package hands out no-op loggers, which keeps library use silent.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names one logging subsystem.
type Category string

const (
	Boot    Category = "boot"    // startup, dictionary loading
	Parse   Category = "parse"   // specification parsing
	Grid    Category = "grid"    // position resolution and grid building
	Lexicon Category = "lexicon" // dictionary construction and queries
	Verify  Category = "verify"  // pipeline orchestration
	Cascade Category = "cascade" // presentation-time error filtering
	CLI     Category = "cli"     // command-line front end
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Init builds the process logger. level is one of debug, info, warn,
// warning, error; jsonOut selects machine-readable JSON over the console
// encoding. Safe to call more than once; the last call wins.
func Init(level string, jsonOut bool) error {
	cfg := zap.NewProductionConfig()
	if !jsonOut {
		cfg = zap.NewDevelopmentConfig()
	}
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "", "info":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn", "warning":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return fmt.Errorf("logging: unknown level %q", level)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	base = logger
	mu.Unlock()
	return nil
}

// L returns the sugared logger for a category.
func L(cat Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(string(cat)).Sugar()
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
