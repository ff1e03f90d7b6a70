// FILE: flags/env.go
package flags

import "os"

// fromEnv reads varname and parses it with the value machinery of the
// given kind, so environment values obey exactly the command-line
// syntax. An unset variable yields dflt; an unparsable one is fatal.
func fromEnv[T flagScalar](varname string, k Kind, dflt T) T {
	valstr, ok := os.LookupEnv(varname)
	if !ok {
		return dflt
	}
	v := newOwnedValue(k)
	if !v.ParseFrom(valstr) {
		reportError(die, "%serror parsing env variable '%s' with value '%s'\n",
			errorPrefix, varname, valstr)
		return dflt
	}
	return v.native().(T)
}

// The FromEnv family reads an environment variable for use as a flag
// default. Example usage:
//
//	var myflag = flags.Bool("myflag", flags.BoolFromEnv("MYFLAG_DEFAULT", false), "whatever")

func BoolFromEnv(varname string, dflt bool) bool {
	return fromEnv(varname, KindBool, dflt)
}

func Int32FromEnv(varname string, dflt int32) int32 {
	return fromEnv(varname, KindInt32, dflt)
}

func Uint32FromEnv(varname string, dflt uint32) uint32 {
	return fromEnv(varname, KindUint32, dflt)
}

func Int64FromEnv(varname string, dflt int64) int64 {
	return fromEnv(varname, KindInt64, dflt)
}

func Uint64FromEnv(varname string, dflt uint64) uint64 {
	return fromEnv(varname, KindUint64, dflt)
}

func Float64FromEnv(varname string, dflt float64) float64 {
	return fromEnv(varname, KindFloat64, dflt)
}

// StringFromEnv needs no parsing; any value is a valid string.
func StringFromEnv(varname string, dflt string) string {
	if val, ok := os.LookupEnv(varname); ok {
		return val
	}
	return dflt
}
