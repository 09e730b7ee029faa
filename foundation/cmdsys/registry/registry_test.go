package registry

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/core/log"
)

var (
	intType    = reflect.TypeFor[int]()
	stringType = reflect.TypeFor[string]()
)

func noop(context.Context, []any) (any, error) { return nil, nil }

func newCommand(alias string, opts command.Options, params ...reflect.Type) *command.Command {
	return command.New(alias, params, noop, opts)
}

func newTestRegistry(caseSensitive bool) *Registry {
	return New(Options{Logger: log.Discard(), CaseSensitive: caseSensitive})
}

func TestRegisterAndLookup(t *testing.T) {
	r := newTestRegistry(true)
	fInt := newCommand("f", command.Options{}, intType)
	fString := newCommand("f", command.Options{}, stringType)
	g := newCommand("g", command.Options{})

	require.NoError(t, r.RegisterAll(fInt, fString, g))

	assert.Equal(t, []*command.Command{fInt, fString}, r.Lookup("f"))
	assert.Equal(t, []*command.Command{g}, r.Lookup("g"))
	assert.Nil(t, r.Lookup("h"))
	assert.Equal(t, 3, r.Len())
}

func TestLookupReturnsCopy(t *testing.T) {
	r := newTestRegistry(true)
	f := newCommand("f", command.Options{}, intType)
	require.NoError(t, r.Register(f))

	got := r.Lookup("f")
	got[0] = nil

	assert.Same(t, f, r.Lookup("f")[0])
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := newTestRegistry(true)

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(newCommand("  ", command.Options{})))
	assert.Error(t, r.RegisterAll(newCommand("ok", command.Options{}), nil))
	assert.Equal(t, 1, r.Len())
}

func TestDuplicateSignatureIsKeptAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf})
	r := New(Options{Logger: logger, CaseSensitive: true})

	require.NoError(t, r.Register(newCommand("f", command.Options{}, intType)))
	require.NoError(t, r.Register(newCommand("f", command.Options{Description: "again"}, intType)))

	assert.Len(t, r.Lookup("f"), 2)
	assert.Contains(t, buf.String(), "duplicate signature")
}

func TestCaseSensitivity(t *testing.T) {
	tests := []struct {
		name          string
		caseSensitive bool
		lookup        string
		wantFound     bool
	}{
		{"sensitive exact", true, "Echo", true},
		{"sensitive lower", true, "echo", false},
		{"sensitive upper", true, "ECHO", false},
		{"insensitive exact", false, "Echo", true},
		{"insensitive lower", false, "echo", true},
		{"insensitive upper", false, "ECHO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(tt.caseSensitive)
			require.NoError(t, r.Register(newCommand("Echo", command.Options{}, stringType)))

			assert.Equal(t, tt.wantFound, len(r.Lookup(tt.lookup)) == 1)
			assert.Equal(t, tt.caseSensitive, r.CaseSensitive())
		})
	}
}

func TestCaseInsensitiveMergesOverloads(t *testing.T) {
	r := newTestRegistry(false)
	first := newCommand("Straße", command.Options{}, intType)
	second := newCommand("STRASSE", command.Options{}, stringType)
	require.NoError(t, r.RegisterAll(first, second))

	assert.Equal(t, []*command.Command{first, second}, r.Lookup("strasse"))
	assert.Equal(t, []string{"Straße"}, r.Aliases())
}

func TestCommandsAndAliases(t *testing.T) {
	r := newTestRegistry(true)
	b1 := newCommand("b", command.Options{}, intType)
	a := newCommand("a", command.Options{})
	b2 := newCommand("b", command.Options{}, stringType)
	m := newCommand("add", command.Options{ClassName: "math"}, intType, intType)
	require.NoError(t, r.RegisterAll(b1, a, b2, m))

	assert.Equal(t, []*command.Command{a, b1, b2, m}, r.Commands())
	assert.Equal(t, []string{"a", "add", "b"}, r.Aliases())
}

func TestMatch(t *testing.T) {
	r := newTestRegistry(false)
	add := newCommand("add", command.Options{}, intType, intType)
	addAll := newCommand("addAll", command.Options{}, stringType)
	mathAdd := newCommand("sum", command.Options{ClassName: "math"}, intType)
	echo := newCommand("echo", command.Options{}, stringType)
	require.NoError(t, r.RegisterAll(add, addAll, mathAdd, echo))

	tests := []struct {
		pattern string
		want    []*command.Command
	}{
		{"add*", []*command.Command{add, addAll}},
		{"ADD*", []*command.Command{add, addAll}},
		{"math.*", []*command.Command{mathAdd}},
		{"e?ho", []*command.Command{echo}},
		{"*", []*command.Command{add, addAll, echo, mathAdd}},
		{"nothing*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := r.Match(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := r.Match("[")
	assert.Error(t, err)
}

func TestConcurrentReadersSeeWholeLists(t *testing.T) {
	r := newTestRegistry(true)

	const writers = 4
	const perWriter = 50

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			for _, cmd := range r.Lookup("f") {
				if cmd == nil {
					t.Error("observed a partially built overload list")
					return
				}
			}
		}
	}()

	var writersWG sync.WaitGroup
	for w := 0; w < writers; w++ {
		writersWG.Add(1)
		go func(w int) {
			defer writersWG.Done()
			for i := 0; i < perWriter; i++ {
				raw := fmt.Sprintf("f#%d-%d", w, i)
				assert.NoError(t, r.Register(command.New("f", []reflect.Type{intType}, noop, command.Options{RawSignature: raw})))
			}
		}(w)
	}
	writersWG.Wait()
	close(stop)
	wg.Wait()

	assert.Len(t, r.Lookup("f"), writers*perWriter)
}
