// File: flags/helper.go
package flags

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// parseFlagList splits a comma-separated list of flag or file names.
// An empty entry or an entry beginning with '-' is malformed syntax and
// fatal; a single trailing comma is tolerated.
func parseFlagList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for _, entry := range parts {
		if entry == "" {
			reportError(die, "%sempty flaglist entry\n", errorPrefix)
		} else if entry[0] == '-' {
			reportError(die, "%sflag \"%s\" begins with '-'\n", errorPrefix, entry)
		}
	}
	return parts
}

// readFileIntoString loads a whole flagfile. A flagfile named on the
// command line is assumed load-bearing, so a read failure is fatal.
func readFileIntoString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		reportError(die, "%s%s: %v\n", errorPrefix, path, err)
		return ""
	}
	return string(data)
}

// splitLines breaks flagfile content on '\n' or '\r', dropping empty
// segments (blank lines are skipped by the grammar anyway).
func splitLines(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// matchesProgram reports whether glob matches the running program's
// full invocation path or its basename.
func matchesProgram(glob string) bool {
	full := ProgramInvocationName()
	short := ProgramInvocationShortName()
	if glob == full || glob == short {
		return true
	}
	if ok, err := filepath.Match(glob, full); err == nil && ok {
		return true
	}
	if ok, err := filepath.Match(glob, short); err == nil && ok {
		return true
	}
	return false
}

// sameFunc compares two stored callbacks by code pointer, the closest
// Go gets to C's function-pointer equality.
func sameFunc(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// sortedKeys returns m's keys in ascending order, for deterministic
// diagnostics and listings.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
