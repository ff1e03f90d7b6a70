// FILE: flags/flag.go
package flags

// Flag is one named configuration entry: identity, a default Value, a
// current Value, the modified bit, and an optional validator. A Flag is
// owned by exactly one Registry; any write to its mutable fields
// requires that registry's lock. Flags registered with the process-wide
// registry are never deleted during normal operation, so pointers
// returned by the definition API stay valid for the process lifetime.
type Flag struct {
	name string
	help string
	file string

	cur       *Value
	def       *Value
	modified  bool
	validator any // kind-typed func(name string, value T) bool, or nil
}

func newFlag(name, help, file string, cur, def *Value) *Flag {
	return &Flag{name: name, help: help, file: file, cur: cur, def: def}
}

func (f *Flag) Name() string     { return f.name }
func (f *Flag) Help() string     { return f.help }
func (f *Flag) Filename() string { return f.file }

// Type returns the flag's kind name: "bool", "int32", ... "string".
func (f *Flag) Type() string { return f.cur.TypeName() }

// CurrentValue formats the current value. Caller holds the registry
// lock when the flag may be mutated concurrently.
func (f *Flag) CurrentValue() string { return f.cur.String() }

// DefaultValue formats the default value.
func (f *Flag) DefaultValue() string { return f.def.String() }

// validate runs the registered validator against v; a flag with no
// validator accepts everything.
func (f *Flag) validate(v *Value) bool {
	if f.validator == nil {
		return true
	}
	return v.Validate(f.name, f.validator)
}

func (f *Flag) validateCurrent() bool { return f.validate(f.cur) }

// updateModifiedBit reconciles the modified bit in case somebody
// bypassed the flags API and wrote directly through the bound storage
// pointer.
func (f *Flag) updateModifiedBit() {
	if !f.modified && !f.cur.Equal(f.def) {
		f.modified = true
	}
}

// copyFrom copies the mutable fields from src, assumed to describe the
// same flag. Values are assigned only when they differ.
func (f *Flag) copyFrom(src *Flag) {
	if f.modified != src.modified {
		f.modified = src.modified
	}
	if !f.cur.Equal(src.cur) {
		f.cur.CopyFrom(src.cur)
	}
	if !f.def.Equal(src.def) {
		f.def.CopyFrom(src.def)
	}
	if !sameFunc(f.validator, src.validator) {
		f.validator = src.validator
	}
}

// FlagInfo is a read-only snapshot of one flag, for introspection.
// Once filled it has no relationship with the live Flag.
type FlagInfo struct {
	Name         string
	Type         string
	Description  string
	CurrentValue string
	DefaultValue string
	Filename     string
	IsDefault    bool
	HasValidator bool
	Ref          any // the current value's storage pointer
}

func (f *Flag) fillInfo(out *FlagInfo) {
	out.Name = f.name
	out.Type = f.Type()
	out.Description = f.help
	out.CurrentValue = f.cur.String()
	out.DefaultValue = f.def.String()
	out.Filename = f.file
	f.updateModifiedBit()
	out.IsDefault = !f.modified
	out.HasValidator = f.validator != nil
	out.Ref = f.cur.ref
}
