// File: resolver.go
// Title: Command Matcher
// Description: Arity filtering, per candidate coercion and survivor
//              comparison for one parsed invocation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package resolver

import (
	"errors"
	"reflect"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/core/log"
)

// Lookuper returns the overloads registered under an alias
type Lookuper interface {
	Lookup(alias string) []*command.Command
}

// ParserSource converts a token into a value of the given type
type ParserSource interface {
	Parse(t reflect.Type, token string) (any, error)
}

// CastResolver resolves explicit cast names and checks their assignability
type CastResolver interface {
	Resolve(name string) (reflect.Type, error)
	CheckAssignable(cast, param reflect.Type) error
}

// Options configures a Resolver
type Options struct {
	Logger *log.Logger
}

// Resolver is the command matcher. It holds no per request state.
type Resolver struct {
	store   Lookuper
	parsers ParserSource
	types   CastResolver
	logger  *log.Logger
}

// Match is a successful resolution
type Match struct {
	Command *command.Command
	Args    []any
	Parsed  command.ParsedCommand
}

// New creates a resolver. types may be nil, in which case every cast fails
// with *command.ExplicitCastNotFoundError.
func New(store Lookuper, parsers ParserSource, types CastResolver, opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Resolver{
		store:   store,
		parsers: parsers,
		types:   types,
		logger:  opts.Logger.WithField("component", "cmdsys-resolver"),
	}
}

// Resolve finds the single overload whose arguments all coerce
func (r *Resolver) Resolve(parsed command.ParsedCommand) (*Match, error) {
	candidates := r.store.Lookup(parsed.Alias)
	if len(candidates) == 0 {
		return nil, &command.CommandNotFoundError{Command: parsed}
	}

	arity := make([]*command.Command, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Signature.Arity() == len(parsed.Args) {
			arity = append(arity, cand)
		}
	}

	req := r.newRequest()
	var survivors []*Match
	var failures []command.CandidateFailure

	for _, cand := range arity {
		args, index, err := req.coerceAll(cand, parsed.Args)
		if err != nil {
			failures = append(failures, command.CandidateFailure{Command: cand, Index: index, Err: err})
			if r.logger.IsLevelEnabled(log.LevelDebug) {
				r.logger.Debug("candidate eliminated", log.Fields{
					"alias":     parsed.Alias,
					"signature": cand.Signature.Raw,
					"argument":  index,
					"reason":    err.Error(),
				})
			}
			continue
		}
		survivors = append(survivors, &Match{Command: cand, Args: args, Parsed: parsed})
	}

	switch len(survivors) {
	case 1:
		return survivors[0], nil
	case 0:
		if len(arity) > 0 {
			if err := req.unresolvableCast(parsed.Args); err != nil {
				return nil, err
			}
		}
		return nil, &command.MatchNotFoundError{Command: parsed, Overloads: arity, Failures: failures}
	default:
		matches := make([]*command.Command, len(survivors))
		for i, s := range survivors {
			matches[i] = s.Command
		}
		return nil, &command.AmbiguousCommandCallError{Command: parsed, Matches: matches}
	}
}

// IsCastError reports whether err comes from an unresolvable cast name
func IsCastError(err error) bool {
	var notFound *command.ExplicitCastNotFoundError
	var ambiguous *command.AmbiguousExplicitCastError
	return errors.As(err, &notFound) || errors.As(err, &ambiguous)
}
