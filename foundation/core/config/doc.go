// Package config loads the command system configuration.
//
// Package: config
// Title: Configuration Loading
// Description: Loads a typed configuration from TOML (default) or YAML files,
//              applies CMDSYS_ prefixed environment overrides, validates the
//              result and optionally watches the file for changes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed configuration, env overrides, fsnotify watching
//
// Example configuration (cmdsys.toml):
//
//	[general]
//	log_level = "warn"
//	log_format = "console"
//
//	[aliases]
//	case_sensitive = false
//
//	[execution]
//	timeout = "10s"
//
//	[metrics]
//	enabled = true
//
// Every key can be overridden from the environment, e.g.
// CMDSYS_ALIASES_CASE_SENSITIVE=true or CMDSYS_EXECUTION_TIMEOUT=2s.
package config
