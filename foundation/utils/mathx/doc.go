// Package mathx provides an arbitrary precision decimal type.
//
// Package: mathx
// Title: Decimal Arithmetic
// Description: Decimal wraps math/big.Rat and parses the plain decimal
//              grammar used by command arguments, so values such as 0.1 are
//              represented exactly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-19 v0.2.0: Strict decimal grammar, exact string rendering
//
// Usage:
//
//	a, _ := mathx.ParseDecimal("0.1")
//	b, _ := mathx.ParseDecimal("0.2")
//	fmt.Println(a.Add(b)) // 0.3
package mathx
