// FILE: flags/value.go
package flags

import (
	"strconv"
	"strings"
)

// Kind identifies one of the seven scalar types a flag value may hold.
// The set is fixed; a flag's kind never changes after definition.
type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat64
	KindString
)

// kindOps is the per-kind capability set: parse, format, compare, copy,
// allocate, and validator handling. Implemented once per Kind so the
// rest of the package never switches on the discriminant.
type kindOps interface {
	name() string
	newRef() any
	parse(ref any, text string) bool
	format(ref any) string
	equal(a, b any) bool
	assign(dst, src any)
	native(ref any) any
	checkValidator(fn any) bool
	validate(flagname string, ref any, fn any) bool
}

var kindTable = [...]kindOps{
	KindBool:    boolKind{},
	KindInt32:   int32Kind{},
	KindUint32:  uint32Kind{},
	KindInt64:   int64Kind{},
	KindUint64:  uint64Kind{},
	KindFloat64: float64Kind{},
	KindString:  stringKind{},
}

func (k Kind) ops() kindOps { return kindTable[k] }

func (k Kind) String() string { return k.ops().name() }

// kindForRef maps a storage pointer to its Kind. The second result is
// false for any pointer type outside the supported seven.
func kindForRef(ref any) (Kind, bool) {
	switch ref.(type) {
	case *bool:
		return KindBool, true
	case *int32:
		return KindInt32, true
	case *uint32:
		return KindUint32, true
	case *int64:
		return KindInt64, true
	case *uint64:
		return KindUint64, true
	case *float64:
		return KindFloat64, true
	case *string:
		return KindString, true
	}
	return 0, false
}

// Value is a typed flag value. It either borrows caller-supplied
// storage (the pointer handed to the definition API, so direct writes
// through that pointer remain visible) or owns storage allocated by
// New. The kind is fixed at construction.
type Value struct {
	kind Kind
	ref  any // non-nil pointer of the kind's storage type
}

// newValue wraps existing storage. Returns nil if ref is not a pointer
// to one of the supported scalar types.
func newValue(ref any) *Value {
	k, ok := kindForRef(ref)
	if !ok {
		return nil
	}
	return &Value{kind: k, ref: ref}
}

// newOwnedValue allocates fresh zero-valued storage for k.
func newOwnedValue(k Kind) *Value {
	return &Value{kind: k, ref: k.ops().newRef()}
}

func (v *Value) Kind() Kind { return v.kind }

// TypeName returns the kind's name ("bool", "int32", ... "string").
func (v *Value) TypeName() string { return v.kind.ops().name() }

// ParseFrom interprets text as this value's kind and stores the result.
// On failure the stored value is left untouched and false is returned.
// The whole input must be consumed; trailing garbage fails.
func (v *Value) ParseFrom(text string) bool {
	return v.kind.ops().parse(v.ref, text)
}

// String formats the value so that ParseFrom(String()) round-trips:
// bool as "true"/"false", integers in decimal, float64 with 17
// significant digits, strings verbatim.
func (v *Value) String() string { return v.kind.ops().format(v.ref) }

// Equal reports whether o holds the same kind and the same value.
func (v *Value) Equal(o *Value) bool {
	if v.kind != o.kind {
		return false
	}
	return v.kind.ops().equal(v.ref, o.ref)
}

// CopyFrom assigns o's value into this one's storage. Kinds must match.
func (v *Value) CopyFrom(o *Value) {
	if v.kind != o.kind {
		panic("flags: CopyFrom between mismatched value kinds")
	}
	v.kind.ops().assign(v.ref, o.ref)
}

// New returns a fresh owned zero Value of the same kind, used to hold
// tentative values during parsing and backup copies during save.
func (v *Value) New() *Value { return newOwnedValue(v.kind) }

// Validate invokes the kind-typed validator fn against the held value.
// fn's signature was checked against the kind at registration time.
func (v *Value) Validate(flagname string, fn any) bool {
	return v.kind.ops().validate(flagname, v.ref, fn)
}

// native returns the held value as its Go type (bool, int32, ...).
func (v *Value) native() any { return v.kind.ops().native(v.ref) }

// --- parsing helpers ---------------------------------------------------

var boolTrue = []string{"1", "t", "true", "y", "yes"}
var boolFalse = []string{"0", "f", "false", "n", "no"}

func parseBoolText(text string) (bool, bool) {
	for _, s := range boolTrue {
		if strings.EqualFold(text, s) {
			return true, true
		}
	}
	for _, s := range boolFalse {
		if strings.EqualFold(text, s) {
			return false, true
		}
	}
	return false, false
}

// A 0x/0X prefix on the raw token selects base 16; a leading 0 alone
// stays decimal, because octal caused too many surprises. The prefix
// must be the first two characters: a sign or leading space before it
// drops the scan back to base 10 and the 'x' then fails the parse.
func hexPrefixed(text string) bool {
	return len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

func parseSigned(text string, bits int) (int64, bool) {
	if text == "" {
		return 0, false
	}
	base, s := 10, strings.TrimLeft(text, " ")
	if hexPrefixed(text) {
		base, s = 16, text[2:]
	}
	r, err := strconv.ParseInt(s, base, bits)
	if err != nil {
		return 0, false
	}
	return r, true
}

func parseUnsigned(text string, bits int) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	s := strings.TrimLeft(text, " ")
	// Reject a leading '-' even though a widen-then-narrow parse might
	// otherwise wrap it into range.
	if strings.HasPrefix(s, "-") {
		return 0, false
	}
	base := 10
	if hexPrefixed(text) {
		base, s = 16, text[2:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	if s == "" {
		return 0, false
	}
	r, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, false
	}
	return r, true
}

func parseFloatText(text string) (float64, bool) {
	s := strings.TrimLeft(text, " ")
	if s == "" || text == "" {
		return 0, false
	}
	// strconv accepts Go-literal digit separators ("1_000.5"); strtod
	// does not, and neither do we.
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return r, true
}

// --- per-kind implementations ------------------------------------------

type boolKind struct{}

func (boolKind) name() string { return "bool" }
func (boolKind) newRef() any  { return new(bool) }
func (boolKind) parse(ref any, text string) bool {
	b, ok := parseBoolText(text)
	if !ok {
		return false
	}
	*ref.(*bool) = b
	return true
}
func (boolKind) format(ref any) string {
	if *ref.(*bool) {
		return "true"
	}
	return "false"
}
func (boolKind) equal(a, b any) bool { return *a.(*bool) == *b.(*bool) }
func (boolKind) assign(dst, src any) { *dst.(*bool) = *src.(*bool) }
func (boolKind) native(ref any) any  { return *ref.(*bool) }
func (boolKind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, bool) bool)
	return ok
}
func (boolKind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, bool) bool)(flagname, *ref.(*bool))
}

type int32Kind struct{}

func (int32Kind) name() string { return "int32" }
func (int32Kind) newRef() any  { return new(int32) }
func (int32Kind) parse(ref any, text string) bool {
	r, ok := parseSigned(text, 32)
	if !ok {
		return false
	}
	*ref.(*int32) = int32(r)
	return true
}
func (int32Kind) format(ref any) string { return strconv.FormatInt(int64(*ref.(*int32)), 10) }
func (int32Kind) equal(a, b any) bool   { return *a.(*int32) == *b.(*int32) }
func (int32Kind) assign(dst, src any)   { *dst.(*int32) = *src.(*int32) }
func (int32Kind) native(ref any) any    { return *ref.(*int32) }
func (int32Kind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, int32) bool)
	return ok
}
func (int32Kind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, int32) bool)(flagname, *ref.(*int32))
}

type uint32Kind struct{}

func (uint32Kind) name() string { return "uint32" }
func (uint32Kind) newRef() any  { return new(uint32) }
func (uint32Kind) parse(ref any, text string) bool {
	r, ok := parseUnsigned(text, 32)
	if !ok {
		return false
	}
	*ref.(*uint32) = uint32(r)
	return true
}
func (uint32Kind) format(ref any) string { return strconv.FormatUint(uint64(*ref.(*uint32)), 10) }
func (uint32Kind) equal(a, b any) bool   { return *a.(*uint32) == *b.(*uint32) }
func (uint32Kind) assign(dst, src any)   { *dst.(*uint32) = *src.(*uint32) }
func (uint32Kind) native(ref any) any    { return *ref.(*uint32) }
func (uint32Kind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, uint32) bool)
	return ok
}
func (uint32Kind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, uint32) bool)(flagname, *ref.(*uint32))
}

type int64Kind struct{}

func (int64Kind) name() string { return "int64" }
func (int64Kind) newRef() any  { return new(int64) }
func (int64Kind) parse(ref any, text string) bool {
	r, ok := parseSigned(text, 64)
	if !ok {
		return false
	}
	*ref.(*int64) = r
	return true
}
func (int64Kind) format(ref any) string { return strconv.FormatInt(*ref.(*int64), 10) }
func (int64Kind) equal(a, b any) bool   { return *a.(*int64) == *b.(*int64) }
func (int64Kind) assign(dst, src any)   { *dst.(*int64) = *src.(*int64) }
func (int64Kind) native(ref any) any    { return *ref.(*int64) }
func (int64Kind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, int64) bool)
	return ok
}
func (int64Kind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, int64) bool)(flagname, *ref.(*int64))
}

type uint64Kind struct{}

func (uint64Kind) name() string { return "uint64" }
func (uint64Kind) newRef() any  { return new(uint64) }
func (uint64Kind) parse(ref any, text string) bool {
	r, ok := parseUnsigned(text, 64)
	if !ok {
		return false
	}
	*ref.(*uint64) = r
	return true
}
func (uint64Kind) format(ref any) string { return strconv.FormatUint(*ref.(*uint64), 10) }
func (uint64Kind) equal(a, b any) bool   { return *a.(*uint64) == *b.(*uint64) }
func (uint64Kind) assign(dst, src any)   { *dst.(*uint64) = *src.(*uint64) }
func (uint64Kind) native(ref any) any    { return *ref.(*uint64) }
func (uint64Kind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, uint64) bool)
	return ok
}
func (uint64Kind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, uint64) bool)(flagname, *ref.(*uint64))
}

type float64Kind struct{}

func (float64Kind) name() string { return "float64" }
func (float64Kind) newRef() any  { return new(float64) }
func (float64Kind) parse(ref any, text string) bool {
	r, ok := parseFloatText(text)
	if !ok {
		return false
	}
	*ref.(*float64) = r
	return true
}

// 17 significant digits round-trip any IEEE 754 double exactly.
func (float64Kind) format(ref any) string {
	return strconv.FormatFloat(*ref.(*float64), 'g', 17, 64)
}
func (float64Kind) equal(a, b any) bool { return *a.(*float64) == *b.(*float64) }
func (float64Kind) assign(dst, src any) { *dst.(*float64) = *src.(*float64) }
func (float64Kind) native(ref any) any  { return *ref.(*float64) }
func (float64Kind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, float64) bool)
	return ok
}
func (float64Kind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, float64) bool)(flagname, *ref.(*float64))
}

type stringKind struct{}

func (stringKind) name() string { return "string" }
func (stringKind) newRef() any  { return new(string) }
func (stringKind) parse(ref any, text string) bool {
	*ref.(*string) = text
	return true
}
func (stringKind) format(ref any) string { return *ref.(*string) }
func (stringKind) equal(a, b any) bool   { return *a.(*string) == *b.(*string) }
func (stringKind) assign(dst, src any)   { *dst.(*string) = *src.(*string) }
func (stringKind) native(ref any) any    { return *ref.(*string) }
func (stringKind) checkValidator(fn any) bool {
	_, ok := fn.(func(string, string) bool)
	return ok
}
func (stringKind) validate(flagname string, ref any, fn any) bool {
	return fn.(func(string, string) bool)(flagname, *ref.(*string))
}
