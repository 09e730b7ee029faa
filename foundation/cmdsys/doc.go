// File: doc.go
// Title: Command System Package Documentation
// Description: Overloaded console command resolution with typed argument
//              coercion and explicit casts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: Rewritten for overload resolution

/*
Package cmdsys turns console lines such as

	add (int)4 "2"

into a call of exactly one registered overload. Several commands may share an
alias; the overload is picked by argument count and by which parameter types
can parse every token. A cast prefix "(TypeName)" narrows one argument to a
named type when the plain tokens fit several overloads.

Setup goes through a Builder, which collects parsers and commands and reports
registration errors at once:

	engine, err := cmdsys.NewBuilder(cmdsys.Options{}).
		Load(
			loader.Definition{Alias: "add", Func: func(a, b int) int { return a + b }},
			loader.Definition{Alias: "add", Func: func(a, b float64) float64 { return a + b }},
		).
		Build()
	if err != nil {
		return err
	}

	result, err := engine.Execute(ctx, "add (int)1 2")

Subpackages:

  - command: data model and error taxonomy
  - parsers: string to value parsers per type
  - typename: cast name lookup
  - registry: alias to overload store
  - parser: console line tokenizer
  - resolver: overload selection and argument coercion
  - loader: commands from Go functions
  - executor: handler invocation with deadline and audit
  - metrics: Prometheus collectors

The Engine is immutable after Build and safe for concurrent use.
*/
package cmdsys
