// File: logger.go
// Title: Core Logger Implementation
// Description: Structured logger with contextual fields on top of zap. Keeps
//              the Fields-based API used throughout libutils while zap does
//              the encoding and level filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-03-02 v0.2.0: zap backend, async mode removed

package log

import (
	"errors"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a string field for logging
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field for logging
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Duration creates a duration field for logging
func Duration(key string, value time.Duration) Fields {
	return Fields{key: value}
}

// Merge combines two Fields into a new one; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// zapFields converts fields in key order so output is stable.
func (f Fields) zapFields() []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger represents a structured logger with contextual information
type Logger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
	name  string
}

// New creates a logger writing console output to stderr at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatConsole})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	level := zap.NewAtomicLevelAt(config.Level.zapLevel())
	core := zapcore.NewCore(config.Format.encoder(), zapcore.AddSync(output), level)

	zl := zap.New(core)
	if config.Name != "" {
		zl = zl.Named(config.Name)
	}

	return &Logger{zl: zl, level: level, name: config.Name}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
}

// WithName returns a child logger with the given name segment appended
func (l *Logger) WithName(name string) *Logger {
	child := l.zl.Named(name)
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &Logger{zl: child, level: l.level, name: full}
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{zl: l.zl.With(fields.zapFields()...), level: l.level, name: l.name}
}

// WithCorrelationID tags all entries with a correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.WithField("correlation_id", correlationID)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields)
}

// LogError logs an error at a level derived from its mDW severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), []Fields{Err(err)})
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), []Fields{fields})
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), []Fields{fields})
	default:
		l.log(LevelError, err.Error(), []Fields{fields})
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// SetLevel changes the minimum level for this logger and all its children
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Name returns the dotted logger name
func (l *Logger) Name() string {
	return l.name
}

// Zap exposes the underlying zap logger for libraries that want one
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func (l *Logger) log(level Level, message string, fields []Fields) {
	ce := l.zl.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}
	var merged Fields
	for _, f := range fields {
		merged = merged.Merge(f)
	}
	ce.Write(merged.zapFields()...)
}
