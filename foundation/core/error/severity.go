// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              pick the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for command system codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks user mistakes such as a mistyped alias or argument
	SeverityLow Severity = iota

	// SeverityMedium marks failures with a workaround, e.g. an ambiguous call
	SeverityMedium

	// SeverityHigh marks broken configuration or a failing handler
	SeverityHigh

	// SeverityCritical marks failures that leave the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	// Registration and configuration problems surface once at startup
	case CodeDuplicatedParser, CodeUnsupportedDeclaration,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeExecution:
		return SeverityHigh

	case CodeAmbiguousCall, CodeAmbiguousCast, CodeTimeout:
		return SeverityMedium

	case CodeCommandNotFound, CodeMatchNotFound, CodeNoValidParser,
		CodeInvalidArgumentFormat, CodeCastNotFound, CodeCastMismatch,
		CodeSyntax, CodeInvalidInput, CodeNotFound, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
