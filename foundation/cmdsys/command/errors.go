// File: errors.go
// Title: Command System Error Taxonomy
// Description: One error type per registration or resolution failure. Each
//              carries structured context and maps onto a foundation error
//              code for logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package command

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
)

// Kind identifies a failure kind independent of its Go type
type Kind string

const (
	KindDuplicatedParser       Kind = "duplicated_parser"
	KindNoValidParser          Kind = "no_valid_parser"
	KindInvalidArgumentFormat  Kind = "invalid_argument_format"
	KindCommandNotFound        Kind = "command_not_found"
	KindMatchNotFound          Kind = "match_not_found"
	KindAmbiguousCall          Kind = "ambiguous_call"
	KindCastNotFound           Kind = "cast_not_found"
	KindAmbiguousCast          Kind = "ambiguous_cast"
	KindCastMismatch           Kind = "cast_mismatch"
	KindUnsupportedDeclaration Kind = "unsupported_declaration"
)

// Error is implemented by every error in this package
type Error interface {
	error
	Kind() Kind
	Code() mdwerror.Code
}

// DuplicatedParserError is returned when a type gets a second parser
type DuplicatedParserError struct {
	Type reflect.Type
}

func (e *DuplicatedParserError) Error() string {
	return fmt.Sprintf("more than one parser was specified for type %s; most common types already have a built-in parser", TypeString(e.Type))
}

func (e *DuplicatedParserError) Kind() Kind          { return KindDuplicatedParser }
func (e *DuplicatedParserError) Code() mdwerror.Code { return mdwerror.CodeDuplicatedParser }

// NoValidParserFoundError is returned when coercion needs a parser that does not exist
type NoValidParserFoundError struct {
	Type reflect.Type
}

func (e *NoValidParserFoundError) Error() string {
	return fmt.Sprintf("no valid parser found for type %s", TypeString(e.Type))
}

func (e *NoValidParserFoundError) Kind() Kind          { return KindNoValidParser }
func (e *NoValidParserFoundError) Code() mdwerror.Code { return mdwerror.CodeNoValidParser }

// InvalidArgumentFormatError is returned when a token cannot be parsed as Type
type InvalidArgumentFormatError struct {
	Argument string
	Type     reflect.Type
	Cause    error
}

func (e *InvalidArgumentFormatError) Error() string {
	return fmt.Sprintf("argument %q cannot be parsed into type %s because it is not in the correct format", e.Argument, TypeString(e.Type))
}

func (e *InvalidArgumentFormatError) Unwrap() error       { return e.Cause }
func (e *InvalidArgumentFormatError) Kind() Kind          { return KindInvalidArgumentFormat }
func (e *InvalidArgumentFormatError) Code() mdwerror.Code { return mdwerror.CodeInvalidArgumentFormat }

// CommandNotFoundError is returned when an alias has no overloads at all
type CommandNotFoundError struct {
	Command ParsedCommand
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("No command found with name '%s'", e.Command.Alias)
}

func (e *CommandNotFoundError) Kind() Kind          { return KindCommandNotFound }
func (e *CommandNotFoundError) Code() mdwerror.Code { return mdwerror.CodeCommandNotFound }

// CandidateFailure records why an arity candidate was eliminated
type CandidateFailure struct {
	Command *Command

	// Index is the position of the argument that failed to coerce
	Index int
	Err   error
}

// MatchNotFoundError is returned when no arity candidate coerces all of its
// arguments. Overloads lists every candidate with a matching arity.
type MatchNotFoundError struct {
	Command   ParsedCommand
	Overloads []*Command
	Failures  []CandidateFailure
}

func (e *MatchNotFoundError) Error() string {
	return fmt.Sprintf("No match found between command '%s' and any of its overloads:%s", e.Command.String(), signatureLines(e.Overloads))
}

// Unwrap exposes the per candidate causes
func (e *MatchNotFoundError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

func (e *MatchNotFoundError) Kind() Kind          { return KindMatchNotFound }
func (e *MatchNotFoundError) Code() mdwerror.Code { return mdwerror.CodeMatchNotFound }

// AmbiguousCommandCallError is returned when several overloads coerce successfully
type AmbiguousCommandCallError struct {
	Command ParsedCommand
	Matches []*Command
}

func (e *AmbiguousCommandCallError) Error() string {
	return fmt.Sprintf("The command call '%s' is ambiguous between the following commands:%s", e.Command.String(), signatureLines(e.Matches))
}

func (e *AmbiguousCommandCallError) Kind() Kind          { return KindAmbiguousCall }
func (e *AmbiguousCommandCallError) Code() mdwerror.Code { return mdwerror.CodeAmbiguousCall }

// ExplicitCastNotFoundError is returned when a cast names an unknown type
type ExplicitCastNotFoundError struct {
	Cast string
}

func (e *ExplicitCastNotFoundError) Error() string {
	return fmt.Sprintf("There is no suitable type for the explicit cast '%s'", e.Cast)
}

func (e *ExplicitCastNotFoundError) Kind() Kind          { return KindCastNotFound }
func (e *ExplicitCastNotFoundError) Code() mdwerror.Code { return mdwerror.CodeCastNotFound }

// AmbiguousExplicitCastError is returned when a cast name matches several types
type AmbiguousExplicitCastError struct {
	Cast      string
	Conflicts []reflect.Type
}

func (e *AmbiguousExplicitCastError) Error() string {
	var b strings.Builder
	for _, t := range e.Conflicts {
		b.WriteString("\n")
		b.WriteString(FullTypeName(t))
	}
	return fmt.Sprintf("The explicit cast '%s' is ambiguous between the following types:%s\nPlease, refer to the full name of the type when casting again.", e.Cast, b.String())
}

func (e *AmbiguousExplicitCastError) Kind() Kind          { return KindAmbiguousCast }
func (e *AmbiguousExplicitCastError) Code() mdwerror.Code { return mdwerror.CodeAmbiguousCast }

// ExplicitCastMismatchError is returned when a cast type is not assignable to the parameter
type ExplicitCastMismatchError struct {
	CastType      reflect.Type
	ParameterType reflect.Type
}

func (e *ExplicitCastMismatchError) Error() string {
	return fmt.Sprintf("The argument needs a %s, whereas the cast was made to %s", TypeString(e.ParameterType), TypeString(e.CastType))
}

func (e *ExplicitCastMismatchError) Kind() Kind          { return KindCastMismatch }
func (e *ExplicitCastMismatchError) Code() mdwerror.Code { return mdwerror.CodeCastMismatch }

// UnsupportedDeclarationError is reported by the loader for declarations it
// cannot turn into a command
type UnsupportedDeclarationError struct {
	Name   string
	Reason string
}

func (e *UnsupportedDeclarationError) Error() string {
	return fmt.Sprintf("The command %s %s", e.Name, e.Reason)
}

func (e *UnsupportedDeclarationError) Kind() Kind          { return KindUnsupportedDeclaration }
func (e *UnsupportedDeclarationError) Code() mdwerror.Code { return mdwerror.CodeUnsupportedDeclaration }

func signatureLines(cmds []*Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString("\n")
		b.WriteString(c.Signature.Raw)
	}
	return b.String()
}

func signatures(cmds []*Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Signature.Raw
	}
	return out
}

func typeNames(types []reflect.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = FullTypeName(t)
	}
	return out
}

// KindOf returns the kind of the first command system error in err's chain
func KindOf(err error) (Kind, bool) {
	var cmdErr Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind(), true
	}
	return "", false
}

// AsError converts err into a foundation error carrying code, severity and
// the structured fields as details. Foundation errors found in the chain are
// returned as is and unknown errors are wrapped with CodeUnknown.
func AsError(err error) *mdwerror.Error {
	if err == nil {
		return nil
	}

	cmdErr, ok := err.(Error)
	if !ok {
		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) {
			return mdwErr
		}
		if !errors.As(err, &cmdErr) {
			return mdwerror.Wrap(err, "command system failure")
		}
	}

	out := mdwerror.New(cmdErr.Error()).WithCode(cmdErr.Code())
	switch e := cmdErr.(type) {
	case *DuplicatedParserError:
		out.WithDetail("type", FullTypeName(e.Type))
	case *NoValidParserFoundError:
		out.WithDetail("type", FullTypeName(e.Type))
	case *InvalidArgumentFormatError:
		out.WithDetail("argument", e.Argument).WithDetail("type", FullTypeName(e.Type))
	case *CommandNotFoundError:
		out.WithDetail("alias", e.Command.Alias).WithDetail("raw", e.Command.String())
	case *MatchNotFoundError:
		out.WithDetail("alias", e.Command.Alias).
			WithDetail("raw", e.Command.String()).
			WithDetail("overloads", signatures(e.Overloads))
	case *AmbiguousCommandCallError:
		out.WithDetail("alias", e.Command.Alias).
			WithDetail("raw", e.Command.String()).
			WithDetail("matches", signatures(e.Matches))
	case *ExplicitCastNotFoundError:
		out.WithDetail("cast", e.Cast)
	case *AmbiguousExplicitCastError:
		out.WithDetail("cast", e.Cast).WithDetail("conflicts", typeNames(e.Conflicts))
	case *ExplicitCastMismatchError:
		out.WithDetail("castType", FullTypeName(e.CastType)).
			WithDetail("parameterType", FullTypeName(e.ParameterType))
	case *UnsupportedDeclarationError:
		out.WithDetail("name", e.Name).WithDetail("reason", e.Reason)
	}
	return out
}
