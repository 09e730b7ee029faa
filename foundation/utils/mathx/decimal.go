// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal arithmetic on top of math/big.Rat.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method
// - 2026-10-19 v0.2.0: Strict grammar, value semantics without pooling

package mathx

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// ParseDecimal parses the plain decimal grammar [+-]digits[.digits] or
// [+-].digits. Exponents, fractions and surrounding whitespace are rejected.
func ParseDecimal(s string) (Decimal, error) {
	if !isPlainDecimal(s) {
		return Decimal{}, fmt.Errorf("invalid decimal format: %q", s)
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("invalid decimal format: %q", s)
	}
	return Decimal{value: rat}, nil
}

// MustParseDecimal is ParseDecimal for constants; it panics on error.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) || !allDigits(fracPart) {
		return false
	}
	if hasDot {
		return fracPart != ""
	}
	return intPart != ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare returns -1 if d < other, 0 if d == other, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d and other represent the same number
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// String renders the exact decimal expansion. Values with a non terminating
// expansion, which only arise from external big.Rat arithmetic, are rounded
// to 16 places.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	places, exact := decimalPlaces(r.Denom())
	if !exact {
		places = 16
	}
	return r.FloatString(places)
}

// decimalPlaces returns the number of fractional digits needed to print
// 1/denom exactly, which is possible only when denom = 2^a * 5^b.
func decimalPlaces(denom *big.Int) (int, bool) {
	rest := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)

	count := func(p *big.Int) int {
		n := 0
		for {
			q, m := new(big.Int).QuoRem(rest, p, mod)
			if m.Sign() != 0 {
				return n
			}
			rest = q
			n++
		}
	}
	a, b := count(two), count(five)
	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(a, b), true
}
