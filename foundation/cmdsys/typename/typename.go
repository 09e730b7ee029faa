// Package typename resolves the type names written in explicit casts, such as
// "(int)4" or "(parsers.Char)x", to concrete types.
//
// Package: typename
// Title: Explicit Cast Type Name Resolver
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package typename

import (
	"reflect"
	"sort"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/cmdsys/parsers"
	"github.com/msto63/cmdsys/foundation/utils/mathx"
)

// Options configures a Resolver
type Options struct {
	// Aliases maps extra names to types. Their targets become known types.
	Aliases map[string]reflect.Type
}

var builtinAliases = map[string]reflect.Type{
	"byte":    reflect.TypeFor[uint8](),
	"rune":    reflect.TypeFor[int32](),
	"char":    reflect.TypeFor[parsers.Char](),
	"decimal": reflect.TypeFor[mathx.Decimal](),
	"any":     reflect.TypeFor[any](),
	"object":  reflect.TypeFor[any](),
}

// Resolver maps names to the known types carrying them. It is immutable
// after New and safe for concurrent use.
type Resolver struct {
	index map[string][]reflect.Type
}

// New indexes every type under its short, package qualified and import path
// qualified name. Pointer types are indexed with a leading "*" on each.
// Built-in aliases are added for known targets only.
func New(opts Options, types ...reflect.Type) *Resolver {
	r := &Resolver{index: make(map[string][]reflect.Type)}

	known := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if t != nil {
			known[t] = true
		}
	}
	for _, t := range opts.Aliases {
		if t != nil {
			known[t] = true
		}
	}

	for t := range known {
		for _, name := range namesOf(t) {
			r.add(name, t)
		}
	}

	aliases := func(table map[string]reflect.Type, onlyKnown bool) {
		for name, t := range table {
			if t == nil || (onlyKnown && !known[t]) {
				continue
			}
			r.add(name, t)
			if ptr := reflect.PointerTo(t); known[ptr] {
				r.add("*"+name, ptr)
			}
		}
	}
	aliases(builtinAliases, true)
	aliases(opts.Aliases, false)

	for name, list := range r.index {
		sort.Slice(list, func(i, j int) bool {
			return command.FullTypeName(list[i]) < command.FullTypeName(list[j])
		})
		r.index[name] = list
	}
	return r
}

func (r *Resolver) add(name string, t reflect.Type) {
	for _, existing := range r.index[name] {
		if existing == t {
			return
		}
	}
	r.index[name] = append(r.index[name], t)
}

func namesOf(t reflect.Type) []string {
	if t.Kind() == reflect.Pointer {
		elem := namesOf(t.Elem())
		out := make([]string, len(elem))
		for i, n := range elem {
			out[i] = "*" + n
		}
		return out
	}

	if t.PkgPath() == "" || t.Name() == "" {
		return []string{command.TypeString(t)}
	}
	return []string{t.Name(), t.String(), command.FullTypeName(t)}
}

// Resolve returns the single type registered under name
func (r *Resolver) Resolve(name string) (reflect.Type, error) {
	list := r.index[name]
	switch len(list) {
	case 0:
		return nil, &command.ExplicitCastNotFoundError{Cast: name}
	case 1:
		return list[0], nil
	default:
		return nil, &command.AmbiguousExplicitCastError{
			Cast:      name,
			Conflicts: append([]reflect.Type(nil), list...),
		}
	}
}

// CheckAssignable verifies that a value of the cast type may be passed as param
func CheckAssignable(cast, param reflect.Type) error {
	if cast == nil || param == nil || !cast.AssignableTo(param) {
		return &command.ExplicitCastMismatchError{CastType: cast, ParameterType: param}
	}
	return nil
}

// Names returns every indexed name in sorted order
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.index))
	for name := range r.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAssignable is the method form of the package level CheckAssignable
func (r *Resolver) CheckAssignable(cast, param reflect.Type) error {
	return CheckAssignable(cast, param)
}
