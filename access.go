// FILE: flags/access.go
package flags

import (
	"fmt"
	"sort"
)

// The programmatic way to read and set flags, using the flag's name as
// a string rather than the bound variable. Typically used when only the
// name is known, perhaps at runtime. All of these work on the
// process-wide registry.

// GetCommandLineOption returns the formatted current value of the named
// flag, or ok=false if no such flag is registered.
func GetCommandLineOption(name string) (string, bool) {
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	f := reg.findFlagLocked(name)
	if f == nil {
		return "", false
	}
	return f.cur.String(), true
}

// GetCommandLineFlagInfo fills a snapshot of the named flag, or returns
// ok=false if no such flag is registered.
func GetCommandLineFlagInfo(name string) (FlagInfo, bool) {
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	f := reg.findFlagLocked(name)
	if f == nil {
		return FlagInfo{}, false
	}
	var info FlagInfo
	f.fillInfo(&info)
	return info, true
}

// GetCommandLineFlagInfoOrDie is GetCommandLineFlagInfo for flags known
// to exist; a wrong name is a fatal error through the exit hook.
func GetCommandLineFlagInfoOrDie(name string) FlagInfo {
	info, ok := GetCommandLineFlagInfo(name)
	if !ok {
		fmt.Fprintf(stderr, "FATAL ERROR: flag name '%s' doesn't exist\n", name)
		exitFunc(1)
	}
	return info
}

// SetCommandLineOptionWithMode sets the named flag from its string
// representation under the given mode. The returned message describes
// the applied change; it is empty when the flag does not exist or the
// value fails to parse or validate. Errors here are never fatal, and a
// recursive flag set this way expands immediately, exactly as it would
// on the command line.
func SetCommandLineOptionWithMode(name, value string, mode FlagSettingMode) string {
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	f := reg.findFlagLocked(name)
	if f == nil {
		return ""
	}
	p := newParser(reg)
	return p.processSingleOptionLocked(f, value, mode)
}

// SetCommandLineOption is SetCommandLineOptionWithMode with SetValue.
func SetCommandLineOption(name, value string) string {
	return SetCommandLineOptionWithMode(name, value, SetValue)
}

// GetAllFlags snapshots every registered flag, sorted by declaring file
// and then by name, so flags from one file list together.
func GetAllFlags() []FlagInfo {
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]FlagInfo, 0, len(reg.byName))
	for _, f := range reg.byName {
		var info FlagInfo
		f.fillInfo(&info)
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Filename != out[j].Filename {
			return out[i].Filename < out[j].Filename
		}
		return out[i].Name < out[j].Name
	})
	return out
}
