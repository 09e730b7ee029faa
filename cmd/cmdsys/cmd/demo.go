package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msto63/cmdsys/foundation/cmdsys/loader"
	"github.com/msto63/cmdsys/foundation/cmdsys/parsers"
	"github.com/msto63/cmdsys/foundation/utils/mathx"
)

// demoDefinitions is the command table served by the CLI. Several aliases
// are overloaded on purpose.
func demoDefinitions() []loader.Definition {
	return []loader.Definition{
		{
			Alias:       "add",
			Description: "adds two integers",
			Func:        func(a, b int) int { return a + b },
		},
		{
			Alias:       "add",
			Description: "adds two floating point numbers",
			Func:        func(a, b float64) float64 { return a + b },
		},
		{
			Alias:       "echo",
			Description: "prints its argument",
			Func:        func(s string) string { return s },
		},
		{
			Alias:       "echo",
			Description: "prints an integer",
			Func:        func(n int) string { return fmt.Sprintf("int %d", n) },
		},
		{
			Alias:       "toggle",
			Description: "negates a boolean",
			Func:        func(b bool) bool { return !b },
		},
		{
			Alias:       "repeat",
			Description: "repeats a string n times",
			Func: func(s string, n int) (string, error) {
				if n < 0 {
					return "", fmt.Errorf("count must not be negative, got %d", n)
				}
				return strings.Repeat(s, n), nil
			},
		},
		{
			Alias:       "greet",
			Description: "greets someone, or nobody with null",
			Func: func(name *string) string {
				if name == nil {
					return "Hello, whoever you are"
				}
				return "Hello, " + *name
			},
		},
		{
			Alias:       "initial",
			Description: "echoes a single character",
			Func:        func(c parsers.Char) string { return "initial " + c.String() },
		},
		{
			Alias:       "sum",
			Description: "adds two exact decimals",
			Func:        func(a, b mathx.Decimal) mathx.Decimal { return a.Add(b) },
		},
		{
			Alias:       "describe",
			Description: "shows the type an untyped argument was parsed into",
			Func:        func(v any) string { return fmt.Sprintf("%v (%T)", v, v) },
		},
		{
			Alias:       "max",
			ClassName:   "Math",
			Description: "returns the larger integer",
			Func:        func(a, b int) int { return max(a, b) },
		},
		{
			Alias:       "wait",
			Description: "sleeps for the given number of milliseconds",
			Func: func(ctx context.Context, ms int) (string, error) {
				select {
				case <-time.After(time.Duration(ms) * time.Millisecond):
					return fmt.Sprintf("waited %dms", ms), nil
				case <-ctx.Done():
					return "", ctx.Err()
				}
			},
		},
	}
}
