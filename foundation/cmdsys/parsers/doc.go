// Package parsers maps concrete Go types to functions converting a raw
// argument token into a value of that type.
//
// Package: parsers
// Title: Parser Registry
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with built-in parsers
//
// Each type has at most one parser. NewDefault returns a registry holding the
// built-in parsers for strings, numbers, booleans, characters and decimals;
// hosts add their own with Register:
//
//	reg := parsers.NewDefault()
//	err := parsers.Register(reg, func(s string) (time.Duration, error) {
//		return time.ParseDuration(s)
//	})
//
// The literal "null" yields nil for pointer and interface types. Value types
// never accept it.
package parsers
