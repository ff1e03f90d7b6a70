// FILE: flags/main_test.go
package flags

import (
	"bytes"
	"testing"
)

// captureStderr redirects the package's diagnostic stream into a buffer
// for the duration of one test.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

// captureExit replaces the exit hook with a recorder, so fatal paths
// surface as recorded codes instead of terminating the test binary.
func captureExit(t *testing.T) *[]int {
	t.Helper()
	codes := &[]int{}
	SetExitFunc(func(code int) { *codes = append(*codes, code) })
	t.Cleanup(func() { SetExitFunc(nil) })
	return codes
}

// snapshotFlags restores the full flag state when the test finishes,
// keeping tests that set shared flags independent of each other.
func snapshotFlags(t *testing.T) {
	t.Helper()
	saved := NewFlagSaver()
	t.Cleanup(saved.Restore)
}
