// FILE: flags/infos.go
package flags

import (
	"path/filepath"
	"strings"
	"sync"
)

// Process-level bookkeeping: the argv the parser was handed, plus the
// usage and version strings. Guarded by its own mutex so readers never
// touch the registry lock.
var (
	infoMu       sync.Mutex
	argvs        []string
	argvJoined   string
	argv0        = "UNKNOWN"
	usageMessage string
	usageSet     bool
	versionText  string
)

// SetArgv records the command line. The first call wins; later calls
// (a reparse, a second ParseCommandLineFlags) are ignored.
func SetArgv(argv []string) {
	infoMu.Lock()
	defer infoMu.Unlock()
	if argvs != nil {
		return
	}
	argvs = make([]string, len(argv))
	copy(argvs, argv)
	argvJoined = strings.Join(argvs, " ")
	if len(argvs) > 0 {
		argv0 = argvs[0]
	}
}

// GetArgvs returns a copy of the recorded command line.
func GetArgvs() []string {
	infoMu.Lock()
	defer infoMu.Unlock()
	out := make([]string, len(argvs))
	copy(out, argvs)
	return out
}

// GetArgv returns the recorded command line joined with spaces.
func GetArgv() string {
	infoMu.Lock()
	defer infoMu.Unlock()
	return argvJoined
}

// GetArgv0 returns the program name as invoked, or "UNKNOWN" before
// any command line has been recorded.
func GetArgv0() string {
	infoMu.Lock()
	defer infoMu.Unlock()
	return argv0
}

// ProgramInvocationName returns the full argv[0].
func ProgramInvocationName() string {
	return GetArgv0()
}

// ProgramInvocationShortName returns argv[0] with any directory
// components stripped.
func ProgramInvocationShortName() string {
	return filepath.Base(GetArgv0())
}

// SetUsageMessage sets the one-line usage text reported by
// ProgramUsage.
func SetUsageMessage(usage string) {
	infoMu.Lock()
	defer infoMu.Unlock()
	usageMessage = usage
	usageSet = true
}

// ProgramUsage returns the usage text, or a placeholder if
// SetUsageMessage was never called.
func ProgramUsage() string {
	infoMu.Lock()
	defer infoMu.Unlock()
	if !usageSet {
		return "Warning: SetUsageMessage() never called"
	}
	return usageMessage
}

// SetVersionString sets the text reported by VersionString.
func SetVersionString(version string) {
	infoMu.Lock()
	defer infoMu.Unlock()
	versionText = version
}

// VersionString returns the version text, or "" if unset.
func VersionString() string {
	infoMu.Lock()
	defer infoMu.Unlock()
	return versionText
}

// resetArgvForTest clears the recorded command line so a test can
// install its own.
func resetArgvForTest() {
	infoMu.Lock()
	defer infoMu.Unlock()
	argvs = nil
	argvJoined = ""
	argv0 = "UNKNOWN"
}
