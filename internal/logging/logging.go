// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Level controls log verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logger construction options.
type Config struct {
	Level  Level
	Output io.Writer // defaults to stderr
}

// DefaultConfig returns the standard CLI logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// Logger is a leveled key-value logger.
type Logger struct {
	cl *charmlog.Logger
}

func toCharmLevel(l Level) charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New creates a Logger from the given config.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	cl := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           toCharmLevel(cfg.Level),
		ReportTimestamp: false,
	})
	return &Logger{cl: cl}
}

// WithComponent returns a logger that tags every entry with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{cl: l.cl.With("component", name)}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.cl.Debug(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.cl.Info(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.cl.Warn(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.cl.Error(msg, keyvals...) }

var (
	defaultMu sync.RWMutex
	defaultL  = New(DefaultConfig())
)

// SetDefault replaces the package-level logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultL = l
}

// Default returns the package-level logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultL
}

func Debug(msg string, keyvals ...any) { Default().Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { Default().Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { Default().Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { Default().Error(msg, keyvals...) }
