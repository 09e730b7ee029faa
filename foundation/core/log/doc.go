// Package log provides structured logging for the command system.
//
// Package: log
// Title: Structured Logging
// Description: Implements a structured logger with levels, persistent context
//              fields, JSON/text/console/logfmt output formats, performance
//              timers and integration with the structured error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Deterministic field order, stderr default, removed async mode
//
// Usage:
//
//	import mdwlog "github.com/msto63/cmdsys/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "resolver")
//
//	logger.Debug("candidate eliminated", mdwlog.Fields{
//		"signature": "add(int, int)",
//		"argument":  1,
//	})
//
//	timer := logger.StartTimer("command_resolution")
//	defer timer.Stop()
//
//	logger.Audit("command executed", mdwlog.Fields{"alias": "add"})
package log
