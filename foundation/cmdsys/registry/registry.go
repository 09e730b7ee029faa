// File: registry.go
// Title: Command Signature Store
// Description: Alias keyed overload lists published as immutable snapshots.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial object/method registry
// - 2026-10-19 v0.2.0: Overload store with case folding and glob matching

package registry

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/core/log"
	mdwstringx "github.com/msto63/cmdsys/foundation/utils/stringx"
)

// Options configures a Registry
type Options struct {
	Logger *log.Logger

	// CaseSensitive makes "Add" and "add" different aliases
	CaseSensitive bool
}

// Registry is the command signature store
type Registry struct {
	logger        *log.Logger
	caseSensitive bool

	mutex    sync.Mutex
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	byAlias map[string][]*command.Command
	ordered []*command.Command
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		logger:        opts.Logger.WithField("component", "cmdsys-registry"),
		caseSensitive: opts.CaseSensitive,
	}
	r.snapshot.Store(&snapshot{byAlias: map[string][]*command.Command{}})
	return r
}

// CaseSensitive reports how aliases are compared
func (r *Registry) CaseSensitive() bool {
	return r.caseSensitive
}

func (r *Registry) key(alias string) string {
	if r.caseSensitive {
		return alias
	}
	return cases.Fold().String(alias)
}

// Register appends cmd to the overloads of its alias
func (r *Registry) Register(cmd *command.Command) error {
	if cmd == nil {
		return errors.New("command cannot be nil")
	}
	if mdwstringx.IsBlank(cmd.Alias) {
		return errors.New("command alias cannot be empty")
	}

	key := r.key(cmd.Alias)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	current := r.snapshot.Load()
	for _, existing := range current.byAlias[key] {
		if sameParams(existing, cmd) {
			r.logger.Warn("command registered with a duplicate signature", log.Fields{
				"alias":     cmd.Alias,
				"signature": cmd.Signature.Raw,
				"existing":  existing.Signature.Raw,
			})
			break
		}
	}

	next := &snapshot{
		byAlias: make(map[string][]*command.Command, len(current.byAlias)+1),
		ordered: make([]*command.Command, 0, len(current.ordered)+1),
	}
	for k, v := range current.byAlias {
		next.byAlias[k] = v
	}
	overloads := make([]*command.Command, 0, len(current.byAlias[key])+1)
	overloads = append(overloads, current.byAlias[key]...)
	next.byAlias[key] = append(overloads, cmd)
	next.ordered = append(append(next.ordered, current.ordered...), cmd)

	r.snapshot.Store(next)

	r.logger.Debug("command registered", log.Fields{
		"alias":     cmd.Alias,
		"signature": cmd.Signature.Raw,
		"overloads": len(next.byAlias[key]),
	})
	return nil
}

// RegisterAll registers every command and joins the failures
func (r *Registry) RegisterAll(cmds ...*command.Command) error {
	var errs []error
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sameParams(a, b *command.Command) bool {
	if a.Signature.Arity() != b.Signature.Arity() {
		return false
	}
	for i, p := range a.Signature.Params {
		if b.Signature.Params[i] != p {
			return false
		}
	}
	return true
}

// Lookup returns the overloads of alias in registration order, nil if unknown
func (r *Registry) Lookup(alias string) []*command.Command {
	overloads := r.snapshot.Load().byAlias[r.key(alias)]
	if len(overloads) == 0 {
		return nil
	}
	return append([]*command.Command(nil), overloads...)
}

// Len returns the number of registered overloads
func (r *Registry) Len() int {
	return len(r.snapshot.Load().ordered)
}

// Commands returns all overloads ordered by display name, then by registration
func (r *Registry) Commands() []*command.Command {
	out := append([]*command.Command(nil), r.snapshot.Load().ordered...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}

// Aliases returns the distinct aliases, sorted. With case folding the first
// registered spelling is reported.
func (r *Registry) Aliases() []string {
	snap := r.snapshot.Load()
	aliases := make([]string, 0, len(snap.byAlias))
	for _, overloads := range snap.byAlias {
		aliases = append(aliases, overloads[0].Alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Match returns the commands whose display name matches the doublestar
// pattern, e.g. "add*" or "math.*", in Commands order
func (r *Registry) Match(pattern string) ([]*command.Command, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	pattern = r.key(pattern)

	var out []*command.Command
	for _, cmd := range r.Commands() {
		ok, err := doublestar.Match(pattern, r.key(cmd.DisplayName()))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, cmd)
		}
	}
	return out, nil
}
