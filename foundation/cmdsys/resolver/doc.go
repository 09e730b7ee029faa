// Package resolver matches a parsed invocation against the registered
// overloads of its alias and coerces the argument tokens into typed values.
//
// Package: resolver
// Title: Command Matcher and Argument Coercion
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Matching runs in three steps. Overloads whose arity differs from the number
// of tokens are discarded. Every remaining candidate then gets a full
// coercion attempt, and a candidate survives only if all of its arguments
// convert. Exactly one survivor is a match. No survivor yields
// *command.MatchNotFoundError and several yield
// *command.AmbiguousCommandCallError; ties are never broken implicitly.
//
// An argument carrying an explicit cast is parsed with the parser of the cast
// type, which must be assignable to the parameter type:
//
//	f(int), f(string)  +  "f 42"       -> ambiguous
//	f(int), f(string)  +  "f (int)42"  -> f(int)
//
// Failures while coercing a candidate only eliminate that candidate. They are
// kept on the MatchNotFoundError and reachable through errors.As. When a
// cast names a type that cannot be resolved, no candidate can succeed, and
// that cast error is returned instead.
//
// Resolution does not modify shared state and may run concurrently.
package resolver
