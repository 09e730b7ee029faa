// File: registry.go
// Title: Parser Registry
// Description: Type to parse function registry with duplicate detection and
//              argument format error wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package parsers

import (
	"errors"
	"maps"
	"reflect"
	"sort"
	"sync"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
)

// Null is the literal token that yields nil for nullable types
const Null = "null"

// ParseFunc converts a raw token into a value
type ParseFunc func(token string) (any, error)

// Registry holds at most one parser per type. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]ParseFunc
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[reflect.Type]ParseFunc)}
}

// NewDefault returns a registry with the built-in parsers
func NewDefault() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		panic(err)
	}
	return r
}

// Clone returns an independent registry holding the same parsers
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{parsers: maps.Clone(r.parsers)}
}

// Register adds the parser for t
func (r *Registry) Register(t reflect.Type, fn ParseFunc) error {
	if t == nil || fn == nil {
		return errors.New("parser type and function must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parsers[t]; exists {
		return &command.DuplicatedParserError{Type: t}
	}
	r.parsers[t] = fn
	return nil
}

// Register adds a typed parser for T
func Register[T any](r *Registry, fn func(string) (T, error)) error {
	return r.Register(reflect.TypeFor[T](), func(token string) (any, error) {
		v, err := fn(token)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Resolve returns the parser for t
func (r *Registry) Resolve(t reflect.Type) (ParseFunc, error) {
	r.mu.RLock()
	fn, ok := r.parsers[t]
	r.mu.RUnlock()

	if !ok {
		return nil, &command.NoValidParserFoundError{Type: t}
	}
	return fn, nil
}

// Has reports whether t has a parser
func (r *Registry) Has(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.parsers[t]
	return ok
}

// Parse converts token with the parser for t. Parser failures are reported
// as *command.InvalidArgumentFormatError.
func (r *Registry) Parse(t reflect.Type, token string) (any, error) {
	fn, err := r.Resolve(t)
	if err != nil {
		return nil, err
	}

	value, err := fn(token)
	if err != nil {
		var formatErr *command.InvalidArgumentFormatError
		if errors.As(err, &formatErr) {
			return nil, err
		}
		return nil, &command.InvalidArgumentFormatError{Argument: token, Type: t, Cause: err}
	}
	return value, nil
}

// Types returns every type with a parser, sorted by name
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.parsers))
	for t := range r.parsers {
		types = append(types, t)
	}
	r.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		return command.FullTypeName(types[i]) < command.FullTypeName(types[j])
	})
	return types
}
