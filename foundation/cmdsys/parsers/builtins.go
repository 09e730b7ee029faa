// File: builtins.go
// Title: Built-in Parsers
// Description: Parsers for strings, integers, floats, decimals, booleans and
//              characters plus their nullable pointer twins.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/msto63/cmdsys/foundation/utils/mathx"
)

// Char is the single character type
type Char rune

// String returns the character itself
func (c Char) String() string {
	return string(rune(c))
}

var errNullValue = errors.New("null is not a valid value for a non-nullable type")

// RegisterBuiltins adds the built-in parsers to r
func RegisterBuiltins(r *Registry) error {
	return errors.Join(
		Register(r, ParseObject),
		Register(r, ParseString),
		Register(r, nullable(func(s string) (string, error) { return s, nil })),

		registerWithPointer(r, signed[int8](8)),
		registerWithPointer(r, signed[int16](16)),
		registerWithPointer(r, signed[int32](32)),
		registerWithPointer(r, signed[int64](64)),
		registerWithPointer(r, signed[int](0)),
		registerWithPointer(r, unsigned[uint8](8)),
		registerWithPointer(r, unsigned[uint16](16)),
		registerWithPointer(r, unsigned[uint32](32)),
		registerWithPointer(r, unsigned[uint64](64)),
		registerWithPointer(r, unsigned[uint](0)),
		registerWithPointer(r, float[float32](32)),
		registerWithPointer(r, float[float64](64)),
		registerWithPointer(r, ParseDecimal),
		registerWithPointer(r, ParseBool),
		registerWithPointer(r, ParseChar),
	)
}

func registerWithPointer[T any](r *Registry, fn func(string) (T, error)) error {
	return errors.Join(Register(r, fn), Register(r, nullable(fn)))
}

// nullable builds the pointer twin of fn. The null literal is checked before
// fn sees the token.
func nullable[T any](fn func(string) (T, error)) func(string) (*T, error) {
	return func(s string) (*T, error) {
		if s == Null {
			return nil, nil
		}
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// ParseObject returns the token itself, or nil for the null literal
func ParseObject(s string) (any, error) {
	if s == Null {
		return nil, nil
	}
	return s, nil
}

// ParseString returns the token itself. Unlike object, the null literal is
// rejected since string is a value type here; use *string to accept it.
func ParseString(s string) (string, error) {
	if s == Null {
		return "", errNullValue
	}
	return s, nil
}

func signed[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
		return T(v), err
	}
}

// unsigned accepts a leading plus sign like signed does
func unsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "+"), 10, bits)
		return T(v), err
	}
}

// float accepts [+-]digits[.digits][(e|E)[+-]digits] and the symbols NaN and
// Infinity. Go literal forms such as hex floats, digit separators and inf
// are rejected.
func float[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		trimmed := strings.TrimSpace(s)
		if !isInvariantFloat(trimmed) {
			return 0, fmt.Errorf("%q is not a number", trimmed)
		}
		v, err := strconv.ParseFloat(trimmed, bits)
		return T(v), err
	}
}

func isInvariantFloat(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return false
	}
	if body == "Infinity" || (body == "NaN" && body == s) {
		return true
	}

	mantissa, exponent, hasExp := strings.Cut(body, "e")
	if !hasExp {
		mantissa, exponent, hasExp = strings.Cut(body, "E")
	}
	if hasExp {
		digits := strings.TrimLeft(exponent, "+-")
		if len(exponent)-len(digits) > 1 || digits == "" || !isDigits(digits) {
			return false
		}
	}

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	return intPart+fracPart != "" && isDigits(intPart) && isDigits(fracPart)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseDecimal parses a trimmed plain decimal such as -12.50
func ParseDecimal(s string) (mathx.Decimal, error) {
	return mathx.ParseDecimal(strings.TrimSpace(s))
}

// ParseBool accepts, in order: true/false in any case, the integers 1 and 0,
// and the exact tokens yes, y, t, no, n and f.
func ParseBool(s string) (bool, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "true") {
		return true, nil
	}
	if strings.EqualFold(trimmed, "false") {
		return false, nil
	}

	if n, err := strconv.ParseInt(trimmed, 10, 32); err == nil {
		switch n {
		case 1:
			return true, nil
		case 0:
			return false, nil
		default:
			return false, fmt.Errorf("integer %d is not a boolean", n)
		}
	}

	switch s {
	case "yes", "y", "t":
		return true, nil
	case "no", "n", "f":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}

// ParseChar requires exactly one character. The token is not trimmed.
func ParseChar(s string) (Char, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %d", utf8.RuneCountInString(s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}
