// FILE: flags/register.go
package flags

import (
	"runtime"
)

// flagScalar is the set of native types a flag may hold.
type flagScalar interface {
	bool | int32 | uint32 | int64 | uint64 | float64 | string
}

// defineVar registers one flag with the process-wide registry. The
// caller's pointer becomes the flag's current-value storage (borrowed,
// so direct writes through it remain visible to UpdateModifiedBit
// reconciliation); the default is copied into library-owned storage.
func defineVar[T flagScalar](p *T, name string, value T, help, file string) {
	*p = value
	def := value
	defaultRegistry().RegisterFlag(newFlag(name, help, file, newValue(p), newValue(&def)))
}

// callerFile records the source file a flag is declared in, for
// duplicate-definition diagnostics and the sorted flag listing.
func callerFile() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return file
}

// Bool defines a bool flag with the given name, default value, and
// help text, and returns a pointer to its current value. The pointer
// stays valid for the process lifetime.
func Bool(name string, value bool, help string) *bool {
	p := new(bool)
	defineVar(p, name, value, help, callerFile())
	return p
}

// BoolVar is like Bool but binds the flag to caller-supplied storage.
func BoolVar(p *bool, name string, value bool, help string) {
	defineVar(p, name, value, help, callerFile())
}

// Int32 defines an int32 flag and returns a pointer to its value.
func Int32(name string, value int32, help string) *int32 {
	p := new(int32)
	defineVar(p, name, value, help, callerFile())
	return p
}

func Int32Var(p *int32, name string, value int32, help string) {
	defineVar(p, name, value, help, callerFile())
}

// Uint32 defines a uint32 flag and returns a pointer to its value.
func Uint32(name string, value uint32, help string) *uint32 {
	p := new(uint32)
	defineVar(p, name, value, help, callerFile())
	return p
}

func Uint32Var(p *uint32, name string, value uint32, help string) {
	defineVar(p, name, value, help, callerFile())
}

// Int64 defines an int64 flag and returns a pointer to its value.
func Int64(name string, value int64, help string) *int64 {
	p := new(int64)
	defineVar(p, name, value, help, callerFile())
	return p
}

func Int64Var(p *int64, name string, value int64, help string) {
	defineVar(p, name, value, help, callerFile())
}

// Uint64 defines a uint64 flag and returns a pointer to its value.
func Uint64(name string, value uint64, help string) *uint64 {
	p := new(uint64)
	defineVar(p, name, value, help, callerFile())
	return p
}

func Uint64Var(p *uint64, name string, value uint64, help string) {
	defineVar(p, name, value, help, callerFile())
}

// Float64 defines a float64 flag and returns a pointer to its value.
func Float64(name string, value float64, help string) *float64 {
	p := new(float64)
	defineVar(p, name, value, help, callerFile())
	return p
}

func Float64Var(p *float64, name string, value float64, help string) {
	defineVar(p, name, value, help, callerFile())
}

// String defines a string flag and returns a pointer to its value.
func String(name string, value string, help string) *string {
	p := new(string)
	defineVar(p, name, value, help, callerFile())
	return p
}

func StringVar(p *string, name string, value string, help string) {
	defineVar(p, name, value, help, callerFile())
}
