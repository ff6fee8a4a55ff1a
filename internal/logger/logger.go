// Package logger wraps charmbracelet/log behind a small structured logging
// interface shared by the resolver, the stores, and the HTTP server.
package logger

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

type (
	// Logger defines the interface for structured logging
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Warn(msg string, keyvals ...any)
		Error(msg string, keyvals ...any)
		With(keyvals ...any) Logger
	}

	loggerImpl struct {
		charmLogger *charmlog.Logger
	}
)

// Config controls how NewLogger builds a logger.
type Config struct {
	Level      string
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

var defaultLogger atomic.Pointer[loggerImpl]

func init() {
	defaultLogger.Store(newImpl(DefaultConfig()))
}

// DefaultConfig logs human-readable text at info level to stderr, keeping
// stdout free for command output.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// ParseLevel maps a level name to a charm log level, defaulting to info.
func ParseLevel(level string) charmlog.Level {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return charmlog.InfoLevel
	}
	return lvl
}

func newImpl(cfg *Config) *loggerImpl {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	charmLogger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           ParseLevel(cfg.Level),
	})
	if cfg.JSON {
		charmLogger.SetFormatter(charmlog.JSONFormatter)
	} else {
		charmLogger.SetFormatter(charmlog.TextFormatter)
	}
	return &loggerImpl{charmLogger: charmLogger}
}

// NewLogger builds a logger from cfg. A nil cfg uses DefaultConfig.
func NewLogger(cfg *Config) Logger {
	return newImpl(cfg)
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return newImpl(&Config{Level: "error", Output: io.Discard})
}

// Init replaces the package default logger.
func Init(cfg *Config) {
	defaultLogger.Store(newImpl(cfg))
}

// GetDefault returns the package default logger.
func GetDefault() Logger {
	return defaultLogger.Load()
}

// StandardLog adapts l to a standard library *log.Logger, for middleware that
// only accepts one.
func StandardLog(l Logger) *stdlog.Logger {
	impl, ok := l.(*loggerImpl)
	if !ok {
		return stdlog.New(io.Discard, "", 0)
	}
	return impl.charmLogger.StandardLog(charmlog.StandardLogOptions{
		ForceLevel: charmlog.InfoLevel,
	})
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) {
	l.charmLogger.Debug(msg, keyvals...)
}

func (l *loggerImpl) Info(msg string, keyvals ...any) {
	l.charmLogger.Info(msg, keyvals...)
}

func (l *loggerImpl) Warn(msg string, keyvals ...any) {
	l.charmLogger.Warn(msg, keyvals...)
}

func (l *loggerImpl) Error(msg string, keyvals ...any) {
	l.charmLogger.Error(msg, keyvals...)
}

func (l *loggerImpl) With(keyvals ...any) Logger {
	return &loggerImpl{charmLogger: l.charmLogger.With(keyvals...)}
}

// Debug logs with the default logger.
func Debug(msg string, keyvals ...any) {
	GetDefault().Debug(msg, keyvals...)
}

// Info logs with the default logger.
func Info(msg string, keyvals ...any) {
	GetDefault().Info(msg, keyvals...)
}

// Warn logs with the default logger.
func Warn(msg string, keyvals ...any) {
	GetDefault().Warn(msg, keyvals...)
}

// Error logs with the default logger.
func Error(msg string, keyvals ...any) {
	GetDefault().Error(msg, keyvals...)
}
