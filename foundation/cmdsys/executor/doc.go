// File: doc.go
// Title: Command Executor Package Documentation
// Description: Runs resolved commands under a deadline with panic recovery,
//              request identifiers and audit logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-19 v0.2.0: Executes resolver matches instead of routing AST nodes

/*
Package executor invokes the handler of a resolved command.

A resolver.Match already carries the chosen overload and its coerced
arguments, so execution is reduced to:

  - stamping an ExecutionContext (request id, timestamp)
  - bounding the handler with a deadline
  - turning handler errors and panics into foundation errors
  - writing an audit record per execution

Handlers that ignore their context keep running after the deadline; the
caller receives a CodeTimeout error as soon as it expires.
*/
package executor
