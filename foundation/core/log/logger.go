// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with persistent context fields, pluggable formatters and
//              integration with the structured error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Copy on With*, stderr default, errors.As in LogError

package log

import (
	"errors"
	"io"
	"maps"
	"os"
	"sync"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
)

// Logger writes structured entries. With* methods return modified copies;
// the receiver is never changed. Copies share their writer lock so lines
// from different children never interleave.
type Logger struct {
	mutex sync.RWMutex

	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields
	writeMu   *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // os.Stderr when nil
	Name   string
}

// New creates a JSON logger at DefaultLevel writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    output,
		name:      config.Name,
		fields:    make(Fields),
		writeMu:   &sync.Mutex{},
	}
}

// with returns a copy of l modified by change
func (l *Logger) with(change func(*Logger)) *Logger {
	l.mutex.RLock()
	clone := &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    make(Fields, len(l.fields)+1),
		writeMu:   l.writeMu,
	}
	maps.Copy(clone.fields, l.fields)
	l.mutex.RUnlock()

	change(clone)
	return clone
}

func (l *Logger) WithLevel(level Level) *Logger {
	return l.with(func(c *Logger) { c.level = level })
}

func (l *Logger) WithFormat(format Format) *Logger {
	return l.with(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithOutput returns a copy writing to output with its own writer lock
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.with(func(c *Logger) {
		c.output = output
		c.writeMu = &sync.Mutex{}
	})
}

func (l *Logger) WithName(name string) *Logger {
	return l.with(func(c *Logger) { c.name = name })
}

// WithField returns a copy adding key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.with(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a copy adding fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.with(func(c *Logger) { maps.Copy(c.fields, fields) })
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields) }

// Audit logs regardless of the configured level
func (l *Logger) Audit(message string, fields ...Fields) { l.log(LevelAudit, message, nil, fields) }

func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields)
}

// LogError logs err at a level derived from its severity. Code, severity,
// operation and details of structured errors become error_* fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err, fields)
		return
	}

	errFields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		errFields["error_"+k] = v
	}

	l.log(severityLevel(mdwErr.Severity()), mdwErr.Message(), err, append([]Fields{errFields}, fields...))
}

func severityLevel(s mdwerror.Severity) Level {
	switch s {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer starts a timer that logs at debug level when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the level of this logger in place. Copies made earlier
// keep their level.
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}
	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	maps.Copy(entry.Fields, l.fields)
	formatter, output, writeMu := l.formatter, l.output, l.writeMu
	l.mutex.RUnlock()

	for _, set := range fields {
		maps.Copy(entry.Fields, set)
	}

	line, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}

	writeMu.Lock()
	_, _ = output.Write(line)
	writeMu.Unlock()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process wide logger used by components built
// without one
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process wide logger. nil is ignored.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Discard returns a logger that writes nowhere
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}
