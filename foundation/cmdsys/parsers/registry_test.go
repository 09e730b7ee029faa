package parsers

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
)

type celsius float64

func TestRegisterDuplicate(t *testing.T) {
	first := func(s string) (celsius, error) { return 1, nil }
	second := func(s string) (celsius, error) { return 2, nil }

	tests := []struct {
		name  string
		order []func(string) (celsius, error)
	}{
		{"first then second", []func(string) (celsius, error){first, second}},
		{"second then first", []func(string) (celsius, error){second, first}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, Register(r, tt.order[0]))

			err := Register(r, tt.order[1])
			var dup *command.DuplicatedParserError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, reflect.TypeFor[celsius](), dup.Type)
		})
	}
}

func TestRegisterBuiltinTwice(t *testing.T) {
	r := NewDefault()

	err := Register(r, func(s string) (int, error) { return 0, nil })
	var dup *command.DuplicatedParserError
	require.ErrorAs(t, err, &dup)

	err = RegisterBuiltins(r)
	require.ErrorAs(t, err, &dup)
}

func TestRegisterNil(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil, func(string) (any, error) { return nil, nil }))
	assert.Error(t, r.Register(reflect.TypeFor[int](), nil))
}

func TestResolveMissing(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve(reflect.TypeFor[time.Duration]())
	var missing *command.NoValidParserFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, reflect.TypeFor[time.Duration](), missing.Type)

	_, err = r.Parse(reflect.TypeFor[time.Duration](), "1s")
	require.ErrorAs(t, err, &missing)
	assert.False(t, r.Has(reflect.TypeFor[time.Duration]()))
}

func TestParseWrapsFailures(t *testing.T) {
	r := NewDefault()

	_, err := r.Parse(reflect.TypeFor[int](), "4.2")
	var format *command.InvalidArgumentFormatError
	require.ErrorAs(t, err, &format)
	assert.Equal(t, "4.2", format.Argument)
	assert.Equal(t, reflect.TypeFor[int](), format.Type)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParsePassesFormatErrorsThrough(t *testing.T) {
	r := NewRegistry()
	custom := &command.InvalidArgumentFormatError{Argument: "raw", Type: reflect.TypeFor[celsius]()}
	require.NoError(t, Register(r, func(s string) (celsius, error) { return 0, custom }))

	_, err := r.Parse(reflect.TypeFor[celsius](), "x")
	assert.Same(t, custom, err)
}

func TestCustomParser(t *testing.T) {
	r := NewDefault()
	require.NoError(t, Register(r, time.ParseDuration))

	v, err := r.Parse(reflect.TypeFor[time.Duration](), "1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, v)
}

func TestTypesSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Register(r, ParseString))
	require.NoError(t, Register(r, ParseBool))
	require.NoError(t, Register(r, ParseChar))

	types := r.Types()
	require.Len(t, types, 3)
	assert.Equal(t, reflect.TypeFor[bool](), types[0])
	assert.Equal(t, reflect.TypeFor[Char](), types[1])
	assert.Equal(t, reflect.TypeFor[string](), types[2])
}

func TestClone(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Register(r, ParseBool))

	clone := r.Clone()
	require.NoError(t, Register(r, ParseChar))
	require.NoError(t, Register(clone, ParseString))

	assert.True(t, clone.Has(reflect.TypeFor[bool]()))
	assert.False(t, clone.Has(reflect.TypeFor[Char]()))
	assert.False(t, r.Has(reflect.TypeFor[string]()))
}
