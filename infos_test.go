// FILE: flags/infos_test.go
package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgvBookkeeping(t *testing.T) {
	resetArgvForTest()
	t.Cleanup(resetArgvForTest)

	assert.Equal(t, "UNKNOWN", GetArgv0())

	SetArgv([]string{"/usr/bin/myprog", "--x=1", "arg"})
	assert.Equal(t, []string{"/usr/bin/myprog", "--x=1", "arg"}, GetArgvs())
	assert.Equal(t, "/usr/bin/myprog --x=1 arg", GetArgv())
	assert.Equal(t, "/usr/bin/myprog", ProgramInvocationName())
	assert.Equal(t, "myprog", ProgramInvocationShortName())

	// The first recording wins; reparses never clobber it.
	SetArgv([]string{"other"})
	assert.Equal(t, "/usr/bin/myprog", GetArgv0())

	// The returned slice is a copy.
	argvs := GetArgvs()
	argvs[0] = "mutated"
	assert.Equal(t, "/usr/bin/myprog", GetArgvs()[0])
}

func TestUsageAndVersion(t *testing.T) {
	assert.Contains(t, ProgramUsage(), "SetUsageMessage() never called")

	SetUsageMessage("myprog [--port=N] files...")
	assert.Equal(t, "myprog [--port=N] files...", ProgramUsage())

	assert.Equal(t, "", VersionString())
	SetVersionString("2.1")
	assert.Equal(t, "2.1", VersionString())
}

func TestMatchesProgram(t *testing.T) {
	resetArgvForTest()
	t.Cleanup(resetArgvForTest)
	SetArgv([]string{"/opt/tools/reporter"})

	assert.True(t, matchesProgram("/opt/tools/reporter"))
	assert.True(t, matchesProgram("reporter"))
	assert.True(t, matchesProgram("report*"))
	assert.True(t, matchesProgram("re?orter"))
	assert.False(t, matchesProgram("otherprog"))
	assert.False(t, matchesProgram("port*"))
}
