// FILE: flags/type.go
package flags

import "fmt"

// Typed accessors for reading a flag's native value by name. Each
// requires the flag to exist and to hold the requested type.

func flagNative(name string, k Kind) (any, error) {
	reg := defaultRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	f := reg.findFlagLocked(name)
	if f == nil {
		return nil, fmt.Errorf("flag '%s' is not registered", name)
	}
	if f.cur.Kind() != k {
		return nil, fmt.Errorf("flag '%s' is of type %s, not %s", name, f.Type(), k)
	}
	return f.cur.native(), nil
}

// GetBool returns the current value of the named bool flag.
func GetBool(name string) (bool, error) {
	v, err := flagNative(name, KindBool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetInt32 returns the current value of the named int32 flag.
func GetInt32(name string) (int32, error) {
	v, err := flagNative(name, KindInt32)
	if err != nil {
		return 0, err
	}
	return v.(int32), nil
}

// GetUint32 returns the current value of the named uint32 flag.
func GetUint32(name string) (uint32, error) {
	v, err := flagNative(name, KindUint32)
	if err != nil {
		return 0, err
	}
	return v.(uint32), nil
}

// GetInt64 returns the current value of the named int64 flag.
func GetInt64(name string) (int64, error) {
	v, err := flagNative(name, KindInt64)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// GetUint64 returns the current value of the named uint64 flag.
func GetUint64(name string) (uint64, error) {
	v, err := flagNative(name, KindUint64)
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// GetFloat64 returns the current value of the named float64 flag.
func GetFloat64(name string) (float64, error) {
	v, err := flagNative(name, KindFloat64)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// GetString returns the current value of the named string flag.
func GetString(name string) (string, error) {
	v, err := flagNative(name, KindString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
