// FILE: flags/decode.go
package flags

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the current value of every registered flag into a
// struct, matching fields by their "flag" tag (or, failing that, the
// lowercased field name, per mapstructure's defaults). Weak typing is
// on, so an int32 flag fills an int field and a string flag fills any
// field its text converts to.
//
//	var cfg struct {
//		Port    int32  `flag:"port"`
//		Verbose bool   `flag:"verbose"`
//	}
//	if err := flags.Scan(&cfg); err != nil { ... }
func Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	reg := defaultRegistry()
	reg.mu.Lock()
	flat := make(map[string]any, len(reg.byName))
	for name, f := range reg.byName {
		flat[name] = f.cur.native()
	}
	reg.mu.Unlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "flag",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(flat); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}
