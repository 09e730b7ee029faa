// Package error provides structured error handling for the command system.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a structured error type carrying a code, a severity,
//              free-form details and an optional cause. Domain packages map
//              their own typed errors onto this type so that logging and
//              front-ends can treat every failure the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Command system codes, dropped localization and user context
//
// Usage:
//
//	import mdwerror "github.com/msto63/cmdsys/foundation/core/error"
//
//	err := mdwerror.New("no command found with name 'foo'").
//		WithCode(mdwerror.CodeCommandNotFound).
//		WithDetail("alias", "foo")
//
//	if mdwerror.HasCode(err, mdwerror.CodeCommandNotFound) {
//		// render a "did you mean" hint
//	}
package error
