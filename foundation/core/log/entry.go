// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry handed to formatters and the Fields map
//              used for structured context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"maps"
	"slices"
	"time"
)

// Fields are structured key-value pairs attached to an entry
type Fields map[string]interface{}

// Merge returns a new map holding f and other; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	maps.Copy(merged, f)
	maps.Copy(merged, other)
	return merged
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Entry is one log message as seen by a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
