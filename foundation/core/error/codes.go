// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the command system. Codes
//              classify failures for logging, metrics labels and front-end
//              rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced service codes with command resolution codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Command registration (startup time)
	CodeDuplicatedParser       Code = "CMD_DUPLICATED_PARSER"
	CodeUnsupportedDeclaration Code = "CMD_UNSUPPORTED_DECLARATION"

	// Argument coercion (per candidate)
	CodeNoValidParser         Code = "CMD_NO_VALID_PARSER"
	CodeInvalidArgumentFormat Code = "CMD_INVALID_ARGUMENT_FORMAT"
	CodeCastNotFound          Code = "CMD_CAST_NOT_FOUND"
	CodeAmbiguousCast         Code = "CMD_AMBIGUOUS_CAST"
	CodeCastMismatch          Code = "CMD_CAST_MISMATCH"

	// Command resolution (terminal)
	CodeCommandNotFound Code = "CMD_COMMAND_NOT_FOUND"
	CodeMatchNotFound   Code = "CMD_MATCH_NOT_FOUND"
	CodeAmbiguousCall   Code = "CMD_AMBIGUOUS_CALL"

	// Input and execution
	CodeSyntax    Code = "CMD_SYNTAX"
	CodeExecution Code = "CMD_EXECUTION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeDuplicatedParser, CodeUnsupportedDeclaration,
		CodeNoValidParser, CodeInvalidArgumentFormat, CodeCastNotFound, CodeAmbiguousCast, CodeCastMismatch,
		CodeCommandNotFound, CodeMatchNotFound, CodeAmbiguousCall,
		CodeSyntax, CodeExecution,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDuplicatedParser, CodeUnsupportedDeclaration:
		return "registration"
	case CodeNoValidParser, CodeInvalidArgumentFormat, CodeCastNotFound, CodeAmbiguousCast, CodeCastMismatch:
		return "coercion"
	case CodeCommandNotFound, CodeMatchNotFound, CodeAmbiguousCall:
		return "resolution"
	case CodeSyntax, CodeExecution:
		return "command"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}
