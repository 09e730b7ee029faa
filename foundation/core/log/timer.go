// File: timer.go
// Title: Performance Timer
// Description: Measures operation durations and logs them on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"time"
)

// Timer measures one operation. It is not safe for concurrent use.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	done      bool
}

// NewTimer starts a timer that reports to logger at debug level. logger may
// be nil, in which case the timer only measures.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    Fields{},
	}
}

func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" and returns the elapsed time. Only the
// first call reports; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs "<operation> failed" at warn level or above
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1e3,
	})
	if err == nil {
		t.logger.log(t.level, t.operation+" completed", nil, []Fields{fields})
		return elapsed
	}

	fields["success"] = false
	t.logger.log(max(t.level, LevelWarn), t.operation+" failed", err, []Fields{fields})
	return elapsed
}
