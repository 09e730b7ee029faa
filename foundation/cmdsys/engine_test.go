// File: engine_test.go
// Title: Command System Engine Tests
// Description: End to end tests from console line to handler result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine tests
// - 2026-10-19 v0.2.0: Rewritten for overload resolution

package cmdsys

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/cmdsys/loader"
	"github.com/msto63/cmdsys/foundation/cmdsys/parser"
	"github.com/msto63/cmdsys/foundation/core/config"
	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
)

type point struct{ X, Y int }

func parsePoint(s string) (point, error) {
	var p point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return point{}, err
	}
	return p, nil
}

func definitions() []loader.Definition {
	return []loader.Definition{
		{Alias: "add", Description: "adds integers", Func: func(a, b int) int { return a + b }},
		{Alias: "add", Description: "adds floats", Func: func(a, b float64) float64 { return a + b }},
		{Alias: "echo", Func: func(s string) string { return s }},
		{Alias: "echo", Func: func(n int) int { return n }},
		{Alias: "greet", Func: func(name *string) string {
			if name == nil {
				return "hello, stranger"
			}
			return "hello, " + *name
		}},
		{Alias: "move", Func: func(p point) string { return fmt.Sprintf("%d/%d", p.X, p.Y) }},
		{Alias: "sleep", Func: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
	}
}

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	engine, err := NewBuilder(opts).
		RegisterParserFunc(parsePoint).
		Load(definitions()...).
		Build()
	require.NoError(t, err)
	return engine
}

func TestExecute(t *testing.T) {
	engine := newEngine(t, Options{})

	tests := []struct {
		line string
		want any
	}{
		{"add 1.5 2", 3.5},
		{"add (int)1 2", 3},
		{"add 1 (float64)2", 3.0},
		{"echo hello", "hello"},
		{"echo (string)5", "5"},
		{"echo (int)5", 5},
		{`greet "Ada"`, "hello, Ada"},
		{"greet null", "hello, stranger"},
		{"move 3,4", "3/4"},
		{"move (point)3,4", "3/4"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result, err := engine.Execute(context.Background(), tt.line)
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.want, result.Data)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	engine := newEngine(t, Options{})

	tests := []struct {
		line string
		want any
	}{
		{"nope", &command.CommandNotFoundError{}},
		{"add 1", &command.MatchNotFoundError{}},
		{"add x y", &command.MatchNotFoundError{}},
		{"add 1 2", &command.AmbiguousCommandCallError{}},
		{"echo 5", &command.AmbiguousCommandCallError{}},
		{"add (huge)1 2", &command.ExplicitCastNotFoundError{}},
		{`echo "open`, &parser.SyntaxError{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			match, err := engine.ResolveLine(tt.line)
			require.Error(t, err)
			assert.Nil(t, match)
			target := reflect.New(reflect.TypeOf(tt.want)).Interface()
			assert.True(t, errors.As(err, target), "got %T", err)
		})
	}
}

func TestResolveParsed(t *testing.T) {
	engine := newEngine(t, Options{})

	match, err := engine.Resolve(command.NewParsed("add", "1", "2.5"))
	require.NoError(t, err)
	assert.Equal(t, "add(float64, float64)", match.Command.Signature.Raw)
	assert.Equal(t, []any{1.0, 2.5}, match.Args)
}

func TestExecuteBlankLine(t *testing.T) {
	engine := newEngine(t, Options{})

	_, err := engine.Execute(context.Background(), "   ")
	var syntaxErr *parser.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestExecuteTimeout(t *testing.T) {
	engine := newEngine(t, Options{Timeout: 10 * time.Millisecond})

	result, err := engine.Execute(context.Background(), "sleep")
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeTimeout))
}

func TestExecuteWithContext(t *testing.T) {
	engine := newEngine(t, Options{})

	result, err := engine.ExecuteWithContext(context.Background(), "echo hi",
		&ExecutionContext{RequestID: "req-42"})
	require.NoError(t, err)
	assert.Equal(t, "req-42", result.RequestID)
	assert.Equal(t, "echo(string)", result.Command)
}

func TestBuildReportsRegistrationErrors(t *testing.T) {
	_, err := NewBuilder(Options{Logger: mdwlog.Discard()}).
		RegisterParserFunc(func(s string) (int, error) { return 0, nil }).
		RegisterParserFunc(42).
		Build()

	require.Error(t, err)
	var dup *command.DuplicatedParserError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, reflect.TypeFor[int](), dup.Type)
	assert.Contains(t, err.Error(), "parser must be a function")
}

func TestBuildRejectsNilCommand(t *testing.T) {
	_, err := NewBuilder(Options{Logger: mdwlog.Discard()}).
		RegisterCommand(nil).
		Build()
	assert.Error(t, err)
}

func TestLoadSkipsMalformedDefinitions(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Format: mdwlog.FormatText, Output: &buf})

	engine, err := NewBuilder(Options{Logger: logger}).
		Load(
			loader.Definition{Alias: "bad", Func: 42},
			loader.Definition{Alias: "good", Func: func() string { return "ok" }},
		).
		Build()

	require.NoError(t, err)
	assert.Nil(t, engine.Lookup("bad"))
	assert.Len(t, engine.Lookup("good"), 1)
	assert.Contains(t, buf.String(), "skipping command definition")
}

func TestCaseSensitivity(t *testing.T) {
	sensitive := newEngine(t, Options{})
	_, err := sensitive.Execute(context.Background(), "ECHO hi")
	var notFound *command.CommandNotFoundError
	assert.ErrorAs(t, err, &notFound)

	insensitive := newEngine(t, Options{CaseInsensitive: true})
	result, err := insensitive.Execute(context.Background(), "ECHO hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Data)
}

func TestTypeNames(t *testing.T) {
	engine := newEngine(t, Options{})
	names := engine.TypeNames()

	for _, want := range []string{"int", "*int", "string", "*string", "decimal", "char", "Char", "point", "cmdsys.point"} {
		assert.Contains(t, names, want)
	}
	assert.NotEmpty(t, engine.ParserTypes())
}

func TestTypeAliasesAndExtraTypes(t *testing.T) {
	type celsius float64

	engine, err := NewBuilder(Options{
		Logger:      mdwlog.Discard(),
		TypeAliases: map[string]reflect.Type{"integer": reflect.TypeFor[int]()},
	}).
		AddTypes(reflect.TypeFor[celsius]()).
		Load(definitions()...).
		RegisterParserFunc(parsePoint).
		Build()
	require.NoError(t, err)

	result, err := engine.Execute(context.Background(), "add (integer)1 2")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Data)
	assert.Contains(t, engine.TypeNames(), "celsius")

	_, err = engine.Execute(context.Background(), "add (celsius)1 2")
	var mismatch *command.MatchNotFoundError
	assert.ErrorAs(t, err, &mismatch)
}

func TestCommandsAndMatch(t *testing.T) {
	engine := newEngine(t, Options{})

	cmds := engine.Commands()
	require.Len(t, cmds, 7)
	assert.Equal(t, "add", cmds[0].Alias)

	matched, err := engine.Match("e*")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	_, err = engine.Match("[")
	assert.Error(t, err)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	engine := newEngine(t, Options{MetricsRegisterer: reg})

	_, err := engine.Execute(context.Background(), "add (int)1 2")
	require.NoError(t, err)
	_, err = engine.ResolveLine("add 1 2")
	require.Error(t, err)
	_, err = engine.ResolveLine(`echo "open`)
	require.Error(t, err)

	expected := `
# HELP cmdsys_executions_total Total number of handler executions by status
# TYPE cmdsys_executions_total counter
cmdsys_executions_total{status="success"} 1
# HELP cmdsys_resolutions_total Total number of command resolutions by outcome
# TYPE cmdsys_resolutions_total counter
cmdsys_resolutions_total{outcome="ambiguous_call"} 1
cmdsys_resolutions_total{outcome="ok"} 1
cmdsys_resolutions_total{outcome="syntax"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"cmdsys_executions_total", "cmdsys_resolutions_total"))
}

func TestBuildSnapshotsRegistrations(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewBuilder(Options{Logger: mdwlog.Discard(), MetricsRegisterer: reg}).
		Load(loader.Definition{Alias: "echo", Func: func(s string) string { return s }})

	first, err := builder.Build()
	require.NoError(t, err)

	builder.RegisterParserFunc(parsePoint).
		Load(loader.Definition{Alias: "move", Func: func(p point) string { return "moved" }})
	second, err := builder.Build()
	require.NoError(t, err)

	assert.NotContains(t, first.ParserTypes(), reflect.TypeFor[point]())
	assert.Contains(t, second.ParserTypes(), reflect.TypeFor[point]())
	_, err = first.ResolveLine("move 1,2")
	var notFound *command.CommandNotFoundError
	assert.ErrorAs(t, err, &notFound)
	_, err = second.ResolveLine("move 1,2")
	require.NoError(t, err)

	_, err = first.Execute(context.Background(), "echo a")
	require.NoError(t, err)
	_, err = second.Execute(context.Background(), "echo b")
	require.NoError(t, err)
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP cmdsys_executions_total Total number of handler executions by status
# TYPE cmdsys_executions_total counter
cmdsys_executions_total{status="success"} 2
`), "cmdsys_executions_total"))
}

func TestMetricsDisabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	engine := newEngine(t, Options{MetricsRegisterer: reg, DisableMetrics: true})

	_, err := engine.Execute(context.Background(), "echo hi")
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Aliases.CaseSensitive = false
	cfg.Execution.Timeout = config.Duration{Duration: 5 * time.Second}
	cfg.Metrics.Enabled = true

	opts := OptionsFromConfig(cfg, mdwlog.Discard())
	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.False(t, opts.DisableMetrics)

	defaults := OptionsFromConfig(nil, nil)
	assert.False(t, defaults.CaseInsensitive)
	assert.Equal(t, 30*time.Second, defaults.Timeout)
	assert.True(t, defaults.DisableMetrics)
}

func TestConcurrentExecute(t *testing.T) {
	engine := newEngine(t, Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := engine.Execute(context.Background(), fmt.Sprintf("add (int)%d 1", i))
			if err != nil {
				errs <- err
				return
			}
			if result.Data != i+1 {
				errs <- fmt.Errorf("got %v, want %d", result.Data, i+1)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
