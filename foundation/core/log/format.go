// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON, text,
//              console and logfmt.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Sorted field output, Format implements TextUnmarshaler

package log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole // text with ANSI colors
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

func (f Format) String() string {
	if f < FormatJSON || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFormat parses a format name in any case
func ParseFormat(format string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(format))
	for i, name := range formatNames {
		if want == name {
			return Format(i), nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter turns an entry into one output line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter writes one JSON object per line. Context fields share the
// top level with timestamp, level and message; the fixed keys win.
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Fields)+5)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		record[k] = v
	}

	record["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if entry.Logger != "" {
		record["logger"] = entry.Logger
	}
	if entry.Error != nil {
		record["error"] = entry.Error.Error()
		// structured errors carry code, severity and details
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				record["error_details"] = json.RawMessage(raw)
			}
		}
	}

	line, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter writes "15:04:05 [WRN] {logger} message [k=v ...] error=..."
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with a clock timestamp
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString("[" + entry.Level.ShortString() + "] ")
	if entry.Logger != "" {
		b.WriteString("{" + entry.Logger + "} ")
	}
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Error != nil {
		b.WriteString(" error=" + strconv.Quote(entry.Error.Error()))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter is the text format wrapped in the level color
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a colored console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line, err := f.TextFormatter.Format(entry)
	if err != nil || f.DisableColors {
		return line, err
	}
	return []byte(entry.Level.Color() + strings.TrimSuffix(string(line), "\n") + "\033[0m\n"), nil
}

// LogfmtFormatter writes space separated key=value pairs. Strings and
// Stringers are quoted.
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a logfmt formatter with RFC 3339 timestamps
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	pairs := []string{
		"timestamp=" + entry.Timestamp.Format(f.TimestampFormat),
		"level=" + entry.Level.String(),
		"message=" + strconv.Quote(entry.Message),
	}
	if entry.Logger != "" {
		pairs = append(pairs, "logger="+entry.Logger)
	}

	for _, k := range entry.Fields.Keys() {
		pairs = append(pairs, k+"="+logfmtValue(entry.Fields[k]))
	}
	if entry.Error != nil {
		pairs = append(pairs, "error="+strconv.Quote(entry.Error.Error()))
	}

	return []byte(strings.Join(pairs, " ") + "\n"), nil
}

func logfmtValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return strconv.Quote(v.String())
	default:
		return fmt.Sprint(v)
	}
}
