// FILE: flags/validator.go
package flags

import (
	"fmt"
	"reflect"
)

// addFlagValidator attaches fn to the flag whose current-value storage
// is ref. Re-registering the identical function succeeds quietly; a
// second, different validator is refused, since a flag gets at most
// one. A nil fn clears any registered validator.
func addFlagValidator(ref any, fn any) bool {
	if fn != nil {
		// A typed nil function clears, same as an untyped nil.
		if v := reflect.ValueOf(fn); v.Kind() == reflect.Func && v.IsNil() {
			fn = nil
		}
	}
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()

	f := reg.findFlagByRefLocked(ref)
	if f == nil {
		fmt.Fprintf(stderr, "WARNING: Ignoring RegisterFlagValidator() for flag pointer %p: no flag found at that address\n", ref)
		return false
	}
	if sameFunc(fn, f.validator) {
		return true // ok to register the same function over and over again
	}
	if fn != nil && f.validator != nil {
		fmt.Fprintf(stderr, "WARNING: Ignoring RegisterFlagValidator() for flag '%s': validate-fn already registered\n", f.name)
		return false
	}
	if fn != nil && !f.cur.kind.ops().checkValidator(fn) {
		fmt.Fprintf(stderr, "WARNING: Ignoring RegisterFlagValidator() for flag '%s': validate-fn has the wrong signature for a %s flag\n", f.name, f.Type())
		return false
	}
	f.validator = fn
	return true
}

// RegisterFlagValidator decorates the flag bound to ref with a
// validation function of the form func(name string, value T) bool for
// the flag's native type T. Once registered, every attempt to set the
// flag runs the validator, and a rejected value leaves the flag
// untouched. Reports whether the validator was registered.
//
// The typed variants below catch signature mistakes at compile time.
func RegisterFlagValidator(ref any, fn any) bool {
	return addFlagValidator(ref, fn)
}

func RegisterBoolValidator(ref *bool, fn func(name string, value bool) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterInt32Validator(ref *int32, fn func(name string, value int32) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterUint32Validator(ref *uint32, fn func(name string, value uint32) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterInt64Validator(ref *int64, fn func(name string, value int64) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterUint64Validator(ref *uint64, fn func(name string, value uint64) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterFloat64Validator(ref *float64, fn func(name string, value float64) bool) bool {
	return addFlagValidator(ref, fn)
}

func RegisterStringValidator(ref *string, fn func(name string, value string) bool) bool {
	return addFlagValidator(ref, fn)
}
