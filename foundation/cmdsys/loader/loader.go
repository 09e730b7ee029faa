// Package loader builds commands and parsers from plain Go functions.
//
// Package: loader
// Title: Declaration Loader
// Description: Reflects over Go functions to derive command signatures and
//              handlers, so hosts can register commands from a table:
//
//	cmds := loader.Load([]loader.Definition{
//		{Alias: "add", Description: "adds two numbers", Func: func(a, b int) int { return a + b }},
//		{Alias: "wait", Func: func(ctx context.Context, d time.Duration) error { ... }},
//	}, func(err error) { logger.LogError(err) })
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package loader

import (
	"context"
	"fmt"
	"reflect"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/cmdsys/parsers"
	mdwstringx "github.com/msto63/cmdsys/foundation/utils/stringx"
)

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
	stringType  = reflect.TypeFor[string]()
)

// Definition describes one command backed by a Go function
type Definition struct {
	Alias        string
	Description  string
	ClassName    string
	UseClassName bool

	// Func is the implementation. Parameters form the signature, except an
	// optional leading context.Context which is injected on execution.
	// Results may be (), (error), (T) or (T, error).
	Func any
}

func (d Definition) name() string {
	alias := mdwstringx.FirstNonBlank(d.Alias, "<unnamed>")
	if d.ClassName != "" {
		return d.ClassName + "." + alias
	}
	return alias
}

func unsupported(def Definition, reason string, args ...any) error {
	return &command.UnsupportedDeclarationError{Name: def.name(), Reason: fmt.Sprintf(reason, args...)}
}

// FromFunc builds a command from def. Declarations that cannot become a
// command yield *command.UnsupportedDeclarationError.
func FromFunc(def Definition) (*command.Command, error) {
	if mdwstringx.IsBlank(def.Alias) {
		return nil, unsupported(def, "has no alias")
	}

	fn := reflect.ValueOf(def.Func)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, unsupported(def, "is not a function")
	}

	ft := fn.Type()
	if ft.IsVariadic() {
		return nil, unsupported(def, "is variadic, which is not supported")
	}

	injectCtx := ft.NumIn() > 0 && ft.In(0) == contextType
	first := 0
	if injectCtx {
		first = 1
	}

	params := make([]reflect.Type, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		if ft.In(i) == contextType {
			return nil, unsupported(def, "accepts context.Context only as its first parameter")
		}
		params = append(params, ft.In(i))
	}

	if err := validateResults(ft); err != nil {
		return nil, unsupported(def, "%s", err.Error())
	}

	handler := func(ctx context.Context, args []any) (any, error) {
		if len(args) != len(params) {
			return nil, fmt.Errorf("%s expects %d arguments, got %d", def.name(), len(params), len(args))
		}
		if ctx == nil {
			ctx = context.Background()
		}

		in := make([]reflect.Value, 0, ft.NumIn())
		if injectCtx {
			in = append(in, reflect.ValueOf(ctx))
		}
		for i, arg := range args {
			if arg == nil {
				in = append(in, reflect.Zero(params[i]))
				continue
			}
			v := reflect.ValueOf(arg)
			if !v.Type().AssignableTo(params[i]) {
				return nil, fmt.Errorf("%s argument %d: %s is not assignable to %s",
					def.name(), i, command.TypeString(v.Type()), command.TypeString(params[i]))
			}
			in = append(in, v)
		}

		return results(fn.Call(in))
	}

	return command.New(def.Alias, params, handler, command.Options{
		Description:  def.Description,
		ClassName:    def.ClassName,
		UseClassName: def.UseClassName,
	}), nil
}

func validateResults(ft reflect.Type) error {
	switch ft.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if ft.Out(1) != errorType {
			return fmt.Errorf("must return error as its second result, got %s", ft.Out(1))
		}
		if ft.Out(0) == errorType {
			return fmt.Errorf("must not return two errors")
		}
		return nil
	default:
		return fmt.Errorf("returns %d results; only (), (error), (T) and (T, error) are supported", ft.NumOut())
	}
}

func results(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type() == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asError(out[1])
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// Load builds every definition. Failures are passed to onError, which may be
// nil, and the definition is skipped.
func Load(defs []Definition, onError func(error)) []*command.Command {
	cmds := make([]*command.Command, 0, len(defs))
	for _, def := range defs {
		cmd, err := FromFunc(def)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// ParserFromFunc adapts func(string) T or func(string) (T, error) into a
// parser for T.
func ParserFromFunc(fn any) (reflect.Type, parsers.ParseFunc, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, nil, fmt.Errorf("parser must be a function, got %T", fn)
	}

	ft := v.Type()
	if ft.NumIn() != 1 || ft.In(0) != stringType || ft.IsVariadic() {
		return nil, nil, fmt.Errorf("parser %s must take exactly one string", ft)
	}
	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(0) != errorType && ft.Out(1) == errorType:
	default:
		return nil, nil, fmt.Errorf("parser %s must return T or (T, error)", ft)
	}

	target := ft.Out(0)
	parse := func(token string) (any, error) {
		out := v.Call([]reflect.Value{reflect.ValueOf(token)})
		if len(out) == 2 {
			if err := asError(out[1]); err != nil {
				return nil, err
			}
		}
		return out[0].Interface(), nil
	}
	return target, parse, nil
}
