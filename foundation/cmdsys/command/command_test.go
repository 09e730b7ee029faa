package command

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amount struct{}

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
)

func noop(context.Context, []any) (any, error) { return nil, nil }

func TestNewRendersSignature(t *testing.T) {
	cmd := New("add", []reflect.Type{intType, stringType}, noop, Options{Description: "adds"})

	assert.Equal(t, "add", cmd.DisplayName())
	assert.Equal(t, "add(int, string)", cmd.Signature.Raw)
	assert.Equal(t, 2, cmd.Signature.Arity())
	assert.Equal(t, "adds", cmd.Description)
	assert.False(t, cmd.UseClassName)
}

func TestNewClassName(t *testing.T) {
	cmd := New("add", []reflect.Type{intType}, noop, Options{ClassName: "math"})

	assert.True(t, cmd.UseClassName)
	assert.Equal(t, "math.add", cmd.DisplayName())
	assert.Equal(t, "math.add(int)", cmd.Signature.Raw)

	hidden := New("add", nil, noop, Options{UseClassName: true})
	assert.Equal(t, "add", hidden.DisplayName())
}

func TestNewCopiesParams(t *testing.T) {
	params := []reflect.Type{intType}
	cmd := New("f", params, noop, Options{RawSignature: "F(Int32)"})
	params[0] = stringType

	assert.Equal(t, intType, cmd.Signature.Params[0])
	assert.Equal(t, "F(Int32)", cmd.String())
}

func TestTypeNames(t *testing.T) {
	anyT := reflect.TypeOf((*any)(nil)).Elem()

	tests := []struct {
		typ      reflect.Type
		short    string
		full     string
		nullable bool
	}{
		{intType, "int", "int", false},
		{reflect.TypeOf((*int)(nil)), "*int", "*int", true},
		{anyT, "any", "any", true},
		{reflect.TypeOf(amount{}), "command.amount", "github.com/msto63/cmdsys/foundation/cmdsys/command.amount", false},
		{reflect.TypeOf(&amount{}), "*command.amount", "*github.com/msto63/cmdsys/foundation/cmdsys/command.amount", true},
		{reflect.TypeOf([]int{}), "[]int", "[]int", true},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			assert.Equal(t, tt.short, TypeString(tt.typ))
			assert.Equal(t, tt.full, FullTypeName(tt.typ))
			assert.Equal(t, tt.nullable, IsNullable(tt.typ))
		})
	}
}

func TestParsedCommandString(t *testing.T) {
	parsed := ParsedCommand{
		Alias: "add",
		Args:  []Argument{{Value: "4", Cast: "int"}, {Value: "2"}},
	}
	assert.Equal(t, "add (int)4 2", parsed.String())

	parsed.Raw = `add (int)4 "2"`
	assert.Equal(t, `add (int)4 "2"`, parsed.String())

	simple := NewParsed("echo", "hi", "there")
	require.Len(t, simple.Args, 2)
	assert.False(t, simple.Args[0].HasCast())
	assert.Equal(t, "echo hi there", simple.Raw)
}
