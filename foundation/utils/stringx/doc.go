// Package stringx provides the small set of Unicode-aware string helpers used
// by the command registry and the console front-end.
//
// Package: stringx
// Title: String Utilities
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Reduced to blank checks, padding and truncation
package stringx
