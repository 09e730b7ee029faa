// File: command.go
// Title: Command Model
// Description: Registered command overloads, their signatures and the parsed
//              invocation requests resolved against them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package command

import (
	"context"
	"reflect"
	"strings"
)

// Handler is the callable behind a command. The resolver never invokes it.
type Handler func(ctx context.Context, args []any) (any, error)

// Signature is the ordered parameter type list of an overload.
type Signature struct {
	Params []reflect.Type

	// Raw is the human readable rendering used in diagnostics, e.g. "add(int, int)".
	Raw string
}

// Arity returns the number of parameters
func (s Signature) Arity() int {
	return len(s.Params)
}

// String returns the raw rendering
func (s Signature) String() string {
	return s.Raw
}

// Command is one registered overload. Commands are built with New and must
// not be modified afterwards.
type Command struct {
	Alias        string
	Signature    Signature
	Description  string
	ClassName    string
	UseClassName bool
	Handler      Handler
}

// Options carries the optional metadata of a command
type Options struct {
	Description  string
	ClassName    string
	UseClassName bool

	// RawSignature overrides the generated signature rendering
	RawSignature string
}

// New builds a command. UseClassName is forced on when a class name is given.
func New(alias string, params []reflect.Type, handler Handler, opts Options) *Command {
	cmd := &Command{
		Alias:        alias,
		Description:  opts.Description,
		ClassName:    opts.ClassName,
		UseClassName: opts.UseClassName || opts.ClassName != "",
		Handler:      handler,
	}

	cmd.Signature.Params = append([]reflect.Type(nil), params...)
	cmd.Signature.Raw = opts.RawSignature
	if cmd.Signature.Raw == "" {
		cmd.Signature.Raw = FormatSignature(cmd.DisplayName(), cmd.Signature.Params)
	}
	return cmd
}

// DisplayName returns "Class.alias" when the class name is shown, else the alias.
func (c *Command) DisplayName() string {
	if c.UseClassName && c.ClassName != "" {
		return c.ClassName + "." + c.Alias
	}
	return c.Alias
}

// String returns the raw signature
func (c *Command) String() string {
	return c.Signature.Raw
}

// FormatSignature renders name(type, type, ...)
func FormatSignature(name string, params []reflect.Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = TypeString(p)
	}
	return name + "(" + strings.Join(names, ", ") + ")"
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// TypeString is reflect.Type.String with the empty interface spelled "any".
func TypeString(t reflect.Type) string {
	switch {
	case t == nil:
		return "<nil>"
	case t == anyType:
		return "any"
	case t.Kind() == reflect.Pointer:
		return "*" + TypeString(t.Elem())
	default:
		return t.String()
	}
}

// FullTypeName qualifies named types with their import path, e.g.
// "github.com/acme/app/money.Amount". Unnamed and predeclared types fall
// back to TypeString.
func FullTypeName(t reflect.Type) string {
	switch {
	case t == nil:
		return "<nil>"
	case t.Kind() == reflect.Pointer:
		return "*" + FullTypeName(t.Elem())
	case t.PkgPath() != "" && t.Name() != "":
		return t.PkgPath() + "." + t.Name()
	default:
		return TypeString(t)
	}
}

// IsNullable reports whether the null literal may produce a value of t
func IsNullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// Argument is one raw token of an invocation
type Argument struct {
	Value string

	// Cast holds the explicit cast type name, empty when absent
	Cast string
}

// HasCast reports whether the argument carries an explicit cast
func (a Argument) HasCast() bool {
	return a.Cast != ""
}

// String renders the argument in console syntax
func (a Argument) String() string {
	if a.HasCast() {
		return "(" + a.Cast + ")" + a.Value
	}
	return a.Value
}

// ParsedCommand is a single resolution request
type ParsedCommand struct {
	Alias string
	Args  []Argument

	// Raw is the original input text
	Raw string
}

// NewParsed builds a request from plain uncast tokens
func NewParsed(alias string, values ...string) ParsedCommand {
	args := make([]Argument, len(values))
	for i, v := range values {
		args[i] = Argument{Value: v}
	}
	parsed := ParsedCommand{Alias: alias, Args: args}
	parsed.Raw = parsed.String()
	return parsed
}

// String returns Raw, or a reconstruction when Raw is empty
func (p ParsedCommand) String() string {
	if p.Raw != "" {
		return p.Raw
	}
	parts := make([]string, 0, len(p.Args)+1)
	parts = append(parts, p.Alias)
	for _, a := range p.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
