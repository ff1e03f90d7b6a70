// FILE: flags/saver.go
package flags

// FlagSaver captures the state of every flag at construction and puts
// it back on Restore. The backup never aliases live registry storage,
// so pointers returned by the definition API keep pointing at the real
// current values throughout.
type FlagSaver struct {
	reg    *Registry
	backup []*Flag
}

// NewFlagSaver snapshots the process-wide registry: name, help, file,
// and deep copies of each flag's current value, default value, modified
// bit, and validator.
func NewFlagSaver() *FlagSaver {
	s := &FlagSaver{reg: defaultRegistry()}
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	for _, name := range sortedKeys(s.reg.byName) {
		main := s.reg.byName[name]
		backup := newFlag(main.name, main.help, main.file, main.cur.New(), main.def.New())
		backup.copyFrom(main)
		s.backup = append(s.backup, backup)
	}
	return s
}

// Restore writes the snapshot back into the registry, matching flags by
// name. Flags registered after the snapshot are left alone; flags that
// vanished from the registry are skipped.
func (s *FlagSaver) Restore() {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	for _, backup := range s.backup {
		if main := s.reg.findFlagLocked(backup.name); main != nil {
			main.copyFrom(backup)
		}
	}
}

// Discard drops the snapshot; a later Restore is a no-op.
func (s *FlagSaver) Discard() {
	s.backup = nil
}
