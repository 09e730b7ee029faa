// File: engine.go
// Title: Command System Engine
// Description: Wires parser registry, signature store, type name resolver,
//              matcher and executor behind a builder and an immutable engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-19 v0.2.0: Builder based setup for overload resolution

package cmdsys

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/cmdsys/executor"
	"github.com/msto63/cmdsys/foundation/cmdsys/loader"
	"github.com/msto63/cmdsys/foundation/cmdsys/metrics"
	"github.com/msto63/cmdsys/foundation/cmdsys/parser"
	"github.com/msto63/cmdsys/foundation/cmdsys/parsers"
	"github.com/msto63/cmdsys/foundation/cmdsys/registry"
	"github.com/msto63/cmdsys/foundation/cmdsys/resolver"
	"github.com/msto63/cmdsys/foundation/cmdsys/typename"
	"github.com/msto63/cmdsys/foundation/core/config"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
	mdwstringx "github.com/msto63/cmdsys/foundation/utils/stringx"
)

// ExecutionContext describes one execution for logging and auditing
type ExecutionContext = executor.ExecutionContext

// Result is the outcome of executing one line
type Result = executor.ExecutionResult

// Match is a successful resolution
type Match = resolver.Match

// Outcome label used for tokenizer failures
const outcomeSyntax = "syntax"

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger

	// CaseInsensitive folds aliases before lookup. Aliases are case
	// sensitive by default.
	CaseInsensitive bool

	// Timeout bounds each handler, executor.DefaultTimeout when zero
	Timeout time.Duration

	// MaxInputLength bounds a line, parser.DefaultMaxInputLength when zero
	MaxInputLength int

	// TypeAliases are extra cast names
	TypeAliases map[string]reflect.Type

	// MetricsRegisterer receives the collectors. A private registry is used
	// when nil.
	MetricsRegisterer prometheus.Registerer
	DisableMetrics    bool
}

// OptionsFromConfig maps a loaded configuration onto engine options
func OptionsFromConfig(cfg *config.Config, logger *mdwlog.Logger) Options {
	if cfg == nil {
		cfg = config.Default()
	}
	return Options{
		Logger:          logger,
		CaseInsensitive: !cfg.Aliases.CaseSensitive,
		Timeout:         cfg.Execution.Timeout.Duration,
		DisableMetrics:  !cfg.Metrics.Enabled,
	}
}

// Builder collects parsers, commands and types before the engine is built.
// It is not safe for concurrent use.
type Builder struct {
	options  Options
	logger   *mdwlog.Logger
	parsers  *parsers.Registry
	commands []*command.Command
	types    []reflect.Type
	errs     []error
}

// NewBuilder starts with the built-in parsers registered
func NewBuilder(opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	b := &Builder{
		options: opts,
		logger:  opts.Logger.WithField("component", "cmdsys-engine"),
		parsers: parsers.NewRegistry(),
	}
	if err := parsers.RegisterBuiltins(b.parsers); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// RegisterParser adds a parser for t. A second parser for the same type is
// reported by Build.
func (b *Builder) RegisterParser(t reflect.Type, fn parsers.ParseFunc) *Builder {
	if err := b.parsers.Register(t, fn); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// RegisterParserFunc adds func(string) T or func(string) (T, error) as the
// parser for T.
func (b *Builder) RegisterParserFunc(fn any) *Builder {
	t, parse, err := loader.ParserFromFunc(fn)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.RegisterParser(t, parse)
}

// RegisterCommand adds prebuilt commands
func (b *Builder) RegisterCommand(cmds ...*command.Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Load adds commands from function definitions. Malformed definitions are
// logged and skipped.
func (b *Builder) Load(defs ...loader.Definition) *Builder {
	cmds := loader.Load(defs, func(err error) {
		b.logger.WarnWithErr("skipping command definition", err)
	})
	return b.RegisterCommand(cmds...)
}

// AddTypes makes types known to casts without registering a parser
func (b *Builder) AddTypes(types ...reflect.Type) *Builder {
	b.types = append(b.types, types...)
	return b
}

// Build validates the collected registrations and returns the engine. The
// engine takes a snapshot; the builder may be extended and built again.
func (b *Builder) Build() (*Engine, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	store := registry.New(registry.Options{
		Logger:        b.options.Logger,
		CaseSensitive: !b.options.CaseInsensitive,
	})
	if err := store.RegisterAll(b.commands...); err != nil {
		return nil, err
	}

	// later registrations on the builder must not reach the engine
	parserSet := b.parsers.Clone()

	known := append([]reflect.Type(nil), parserSet.Types()...)
	for _, cmd := range store.Commands() {
		known = append(known, cmd.Signature.Params...)
	}
	known = append(known, b.types...)
	types := typename.New(typename.Options{Aliases: b.options.TypeAliases}, known...)

	var collector *metrics.Collector
	if !b.options.DisableMetrics {
		var err error
		collector, err = metrics.New(b.options.MetricsRegisterer)
		if err != nil {
			return nil, err
		}
	}

	engine := &Engine{
		parser: parser.New(parser.Options{
			Logger:         b.options.Logger,
			MaxInputLength: b.options.MaxInputLength,
		}),
		parsers:  parserSet,
		store:    store,
		types:    types,
		resolver: resolver.New(store, parserSet, types, resolver.Options{Logger: b.options.Logger}),
		executor: executor.New(executor.Options{Logger: b.options.Logger, Timeout: b.options.Timeout}),
		metrics:  collector,
		logger:   b.logger,
	}

	b.logger.Info("Command engine initialized", mdwlog.Fields{
		"commands":      store.Len(),
		"aliases":       len(store.Aliases()),
		"parsers":       len(parserSet.Types()),
		"caseSensitive": store.CaseSensitive(),
		"metrics":       collector != nil,
	})

	return engine, nil
}

// Engine resolves and executes console lines. It is immutable and safe for
// concurrent use.
type Engine struct {
	parser   *parser.Parser
	parsers  *parsers.Registry
	store    *registry.Registry
	types    *typename.Resolver
	resolver *resolver.Resolver
	executor *executor.Engine
	metrics  *metrics.Collector
	logger   *mdwlog.Logger
}

// Resolve picks the single overload matching parsed
func (e *Engine) Resolve(parsed command.ParsedCommand) (*Match, error) {
	timer := e.logger.StartTimer("command resolution").
		WithLevel(mdwlog.LevelTrace).
		WithField("alias", parsed.Alias)

	match, err := e.resolver.Resolve(parsed)

	// failures are logged with the timer level, not as warnings
	outcome := outcomeOf(err)
	elapsed := timer.WithField("outcome", outcome).Stop()
	e.metrics.ObserveResolution(outcome, elapsed)
	return match, err
}

// ResolveLine tokenizes line and resolves it
func (e *Engine) ResolveLine(line string) (*Match, error) {
	parsed, err := e.parser.Parse(line)
	if err != nil {
		e.metrics.ObserveResolution(outcomeSyntax, 0)
		return nil, err
	}
	return e.Resolve(parsed)
}

// Execute resolves line and runs the chosen handler
func (e *Engine) Execute(ctx context.Context, line string) (*Result, error) {
	return e.ExecuteWithContext(ctx, line, nil)
}

// ExecuteWithContext is Execute with caller supplied request metadata
func (e *Engine) ExecuteWithContext(ctx context.Context, line string, execCtx *ExecutionContext) (*Result, error) {
	if mdwstringx.IsBlank(line) {
		return nil, &parser.SyntaxError{Position: 0, Message: "empty input"}
	}

	match, err := e.ResolveLine(line)
	if err != nil {
		return nil, err
	}
	return e.ExecuteMatch(ctx, match, execCtx)
}

// ExecuteMatch runs the handler of an already resolved match
func (e *Engine) ExecuteMatch(ctx context.Context, match *Match, execCtx *ExecutionContext) (*Result, error) {
	result, err := e.executor.Execute(ctx, match, execCtx)
	e.metrics.ObserveExecution(err == nil)
	return result, err
}

// Lookup returns the overloads registered under alias
func (e *Engine) Lookup(alias string) []*command.Command {
	return e.store.Lookup(alias)
}

// Commands returns every registered overload ordered by name
func (e *Engine) Commands() []*command.Command {
	return e.store.Commands()
}

// Match returns the overloads whose alias matches a glob pattern
func (e *Engine) Match(pattern string) ([]*command.Command, error) {
	return e.store.Match(pattern)
}

// TypeNames returns every name accepted inside a cast
func (e *Engine) TypeNames() []string {
	return e.types.Names()
}

// ParserTypes returns the types that have a parser
func (e *Engine) ParserTypes() []reflect.Type {
	return e.parsers.Types()
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	if kind, ok := command.KindOf(err); ok {
		return string(kind)
	}
	return "error"
}
