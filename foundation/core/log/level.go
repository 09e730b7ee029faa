// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Table driven names, TextUnmarshaler for config files

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

// Levels in increasing order of importance. LevelAudit passes every filter.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelAudit
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {name: "trace", short: "TRC", color: "\033[37m"},
	LevelDebug: {name: "debug", short: "DBG", color: "\033[36m"},
	LevelInfo:  {name: "info", short: "INF", color: "\033[32m", aliases: []string{"information"}},
	LevelWarn:  {name: "warn", short: "WRN", color: "\033[33m", aliases: []string{"warning"}},
	LevelError: {name: "error", short: "ERR", color: "\033[31m"},
	LevelFatal: {name: "fatal", short: "FTL", color: "\033[35m"},
	LevelAudit: {name: "audit", short: "AUD", color: "\033[34m"},
}

func (l Level) info() levelInfo {
	if l < LevelTrace || int(l) >= len(levels) {
		return levelInfo{name: "unknown", short: "???", color: "\033[0m"}
	}
	return levels[l]
}

// String returns the lower case level name
func (l Level) String() string {
	return l.info().name
}

// ShortString returns the three letter level tag used by text output
func (l Level) ShortString() string {
	return l.info().short
}

// Color returns the ANSI color sequence used by console output
func (l Level) Color() string {
	return l.info().color
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel accepts a level name, its short tag or a common alias, in any case
func ParseLevel(level string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(level))
	for i, info := range levels {
		if want == info.name || want == strings.ToLower(info.short) {
			return Level(i), nil
		}
		for _, alias := range info.aliases {
			if want == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a level or format name that is not recognized
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level of loggers built with New
func DefaultLevel() Level {
	return LevelInfo
}
