// Package registry stores registered command overloads by alias.
//
// Package: registry
// Title: Command Signature Store
// Description: Append-only store of command overloads keyed by alias, with
//              lock-free reads through immutable snapshots and glob based
//              listing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial object/method registry
// - 2026-10-19 v0.2.0: Rewritten as an overload store keyed by alias
//
// Writers are serialized and publish a fresh snapshot after each
// registration, so a concurrent Lookup sees either the old or the new alias
// list, never a partial one.
package registry
