// File: coerce.go
// Title: Argument Coercion
// Description: Converts argument tokens into parameter values, honoring
//              explicit casts. Cast lookups are memoized per request.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package resolver

import (
	"reflect"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
)

type castResult struct {
	typ reflect.Type
	err error
}

// request carries the state of one Resolve call
type request struct {
	*Resolver
	casts map[string]castResult
}

func (r *Resolver) newRequest() *request {
	return &request{Resolver: r, casts: make(map[string]castResult)}
}

func (q *request) resolveCast(name string) (reflect.Type, error) {
	if res, ok := q.casts[name]; ok {
		return res.typ, res.err
	}

	var res castResult
	if q.types == nil {
		res.err = &command.ExplicitCastNotFoundError{Cast: name}
	} else {
		res.typ, res.err = q.types.Resolve(name)
	}
	q.casts[name] = res
	return res.typ, res.err
}

// coerceAll converts every argument for cand. On failure it returns the
// index of the offending argument.
func (q *request) coerceAll(cand *command.Command, args []command.Argument) ([]any, int, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		v, err := q.coerce(arg, cand.Signature.Params[i])
		if err != nil {
			return nil, i, err
		}
		values[i] = v
	}
	return values, -1, nil
}

func (q *request) coerce(arg command.Argument, param reflect.Type) (any, error) {
	if !arg.HasCast() {
		return q.parsers.Parse(param, arg.Value)
	}

	castType, err := q.resolveCast(arg.Cast)
	if err != nil {
		return nil, err
	}
	if err := q.types.CheckAssignable(castType, param); err != nil {
		return nil, err
	}
	return q.parsers.Parse(castType, arg.Value)
}

// unresolvableCast returns the first cast error among args, in argument order
func (q *request) unresolvableCast(args []command.Argument) error {
	for _, arg := range args {
		if !arg.HasCast() {
			continue
		}
		if _, err := q.resolveCast(arg.Cast); err != nil {
			return err
		}
	}
	return nil
}
