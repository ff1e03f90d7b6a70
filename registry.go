// FILE: flags/registry.go
package flags

import (
	"fmt"
	"strings"
	"sync"
)

// FlagSettingMode selects how a new value interacts with a flag's
// current and default state.
type FlagSettingMode int

const (
	// SetValue sets or modifies the flag's current value.
	SetValue FlagSettingMode = iota
	// SetIfDefault sets the current value only if the flag has not
	// been set by someone else; otherwise it succeeds without change.
	SetIfDefault
	// SetDefault changes the flag's default value; a flag still at its
	// default follows it.
	SetDefault
)

// Registry holds all flags of one namespace, indexed by name and by
// the address of each flag's current-value storage. One mutex guards
// both maps and every mutation of an owned Flag. Methods whose names
// end in Locked require the caller to hold the lock; the rest acquire
// it themselves.
type Registry struct {
	mu     sync.Mutex
	byName map[string]*Flag
	byRef  map[any]*Flag
}

// NewRegistry creates an empty registry. Most callers want the
// process-wide registry used implicitly by the package-level API;
// private registries exist for offline copies such as flag savers.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Flag),
		byRef:  make(map[any]*Flag),
	}
}

// RegisterFlag adds f to the registry. Registering a second flag under
// an already-used name is a fatal configuration error, reported through
// the exit hook: a different declaring file means a duplicate
// definition, the same file means the same definition was registered
// twice.
func (r *Registry) RegisterFlag(f *Flag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byName[f.name]; ok {
		if prev.file != f.file {
			reportError(die, "%sflag '%s' was defined more than once (in files '%s' and '%s').\n",
				errorPrefix, f.name, prev.file, f.file)
		} else {
			reportError(die, "%ssomething wrong with flag '%s' in file '%s'.  "+
				"One possibility: file '%s' is being registered more than once.\n",
				errorPrefix, f.name, f.file, f.file)
		}
		return
	}
	r.byName[f.name] = f
	r.byRef[f.cur.ref] = f
}

func (r *Registry) findFlagLocked(name string) *Flag {
	return r.byName[name]
}

// findFlagByRefLocked resolves a flag from the address of its current
// value's storage, the reverse lookup used by validator registration.
func (r *Registry) findFlagByRefLocked(ref any) *Flag {
	return r.byRef[ref]
}

// splitArgumentLocked parses one raw token of the shape "name" or
// "name=value" into a flag lookup plus an optional inline value.
// A lookup failure for "noX" retries as "X" when X exists and is
// boolean, rewriting the value to "0"; a boolean flag with no inline
// value defaults to "1". On failure the returned flag is nil and
// errMsg carries the diagnostic.
func (r *Registry) splitArgumentLocked(arg string) (f *Flag, key, value string, hasValue bool, errMsg string) {
	key, value, hasValue = strings.Cut(arg, "=")

	f = r.findFlagLocked(key)
	if f == nil {
		// The one exception to unknown-flag: "nox" where a boolean
		// flag "x" exists is the canonical negation idiom.
		if !strings.HasPrefix(key, "no") {
			return nil, key, "", false, fmt.Sprintf("%sunknown command line flag '%s'\n", errorPrefix, key)
		}
		f = r.findFlagLocked(key[2:])
		if f == nil {
			return nil, key, "", false, fmt.Sprintf("%sunknown command line flag '%s'\n", errorPrefix, key)
		}
		if f.Type() != "bool" {
			return nil, key, "", false, fmt.Sprintf("%sboolean value (%s) specified for %s command line flag\n",
				errorPrefix, key, f.Type())
		}
		key = key[2:]
		value, hasValue = "0", true
	}

	if !hasValue && f.Type() == "bool" {
		// The --nox case was already handled, so this is the --x case.
		value, hasValue = "1", true
	}
	return f, key, value, hasValue, ""
}

// tryParseLocked parses value into a tentative copy, validates it, and
// only on success copies it into dst, so a bad input never corrupts
// existing state. The returned message describes either the failure or
// the applied change.
func (r *Registry) tryParseLocked(f *Flag, dst *Value, value string) (string, bool) {
	tentative := dst.New()
	if !tentative.ParseFrom(value) {
		return fmt.Sprintf("%sillegal value '%s' specified for %s flag '%s'\n",
			errorPrefix, value, f.Type(), f.name), false
	}
	if !f.validate(tentative) {
		return fmt.Sprintf("%sfailed validation of new value '%s' for flag '%s'\n",
			errorPrefix, tentative.String(), f.name), false
	}
	dst.CopyFrom(tentative)
	return fmt.Sprintf("%s set to %s\n", f.name, dst.String()), true
}

// setFlagLocked is the core state transition. Parse and validation
// failures leave the flag untouched and are reported, not fatal.
func (r *Registry) setFlagLocked(f *Flag, value string, mode FlagSettingMode) (string, bool) {
	f.updateModifiedBit()
	switch mode {
	case SetValue:
		msg, ok := r.tryParseLocked(f, f.cur, value)
		if !ok {
			return msg, false
		}
		f.modified = true
		return msg, true

	case SetIfDefault:
		if !f.modified {
			msg, ok := r.tryParseLocked(f, f.cur, value)
			if !ok {
				return msg, false
			}
			f.modified = true
			return msg, true
		}
		// Already set by someone else: trivially succeed, reporting
		// the unchanged current value.
		return fmt.Sprintf("%s set to %s", f.name, f.cur.String()), true

	case SetDefault:
		msg, ok := r.tryParseLocked(f, f.def, value)
		if !ok {
			return msg, false
		}
		if !f.modified {
			// Not yet user-modified: current follows the new default.
			r.tryParseLocked(f, f.cur, value)
		}
		return msg, true
	}
	return "", false
}

// --- the process-wide registry -----------------------------------------

// The lazy-init race is guarded by its own bootstrap lock, separate
// from the registry lock it creates.
var (
	globalRegistryMu sync.Mutex
	globalRegistry   *Registry
)

func defaultRegistry() *Registry {
	globalRegistryMu.Lock()
	defer globalRegistryMu.Unlock()
	if globalRegistry == nil {
		globalRegistry = NewRegistry()
	}
	return globalRegistry
}

// ShutDownCommandLineFlags tears down the process-wide registry,
// releasing every flag it owns, including this package's own directive
// flags. Thread-hostile: call only at process end, when no other
// goroutine can still read or set a flag.
func ShutDownCommandLineFlags() {
	globalRegistryMu.Lock()
	globalRegistry = nil
	globalRegistryMu.Unlock()
}
