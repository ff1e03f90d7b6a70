// FILE: flags/io_test.go
package flags

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ioTestPort = Int32("io_test_port", 7070, "port exercised by io tests")
	ioTestName = String("io_test_name", "alpha", "name exercised by io tests")
	ioTestRate = Float64("io_test_rate", 1.5, "rate exercised by io tests")
	ioTestOn   = Bool("io_test_on", false, "toggle exercised by io tests")
)

func TestCommandLineFlagsIntoString(t *testing.T) {
	snapshotFlags(t)

	SetCommandLineOption("io_test_port", "7171")
	out := CommandLineFlagsIntoString()

	assert.Contains(t, out, "--io_test_port=7171\n")
	assert.Contains(t, out, "--io_test_name=alpha\n")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "--"), "line %q", line)
	}
}

func TestReadFlagsFromString(t *testing.T) {
	snapshotFlags(t)
	codes := captureExit(t)
	captureStderr(t)

	ok := ReadFlagsFromString("--io_test_port=1234\n--io_test_on\n", false)
	require.True(t, ok)
	assert.Equal(t, int32(1234), *ioTestPort)
	assert.True(t, *ioTestOn)
	assert.Empty(t, *codes)
}

// A bad line rolls the whole read back, including lines that had
// already been applied.
func TestReadFlagsFromStringRollsBack(t *testing.T) {
	snapshotFlags(t)
	codes := captureExit(t)
	captureStderr(t)

	SetCommandLineOption("io_test_port", "1")
	ok := ReadFlagsFromString("--io_test_name=changed\n--io_test_port=notanint\n", false)

	assert.False(t, ok)
	assert.Equal(t, int32(1), *ioTestPort)
	assert.Equal(t, "alpha", *ioTestName)
	assert.Empty(t, *codes) // errorsAreFatal was false

	ok = ReadFlagsFromString("--io_test_port=notanint\n", true)
	assert.False(t, ok)
	assert.Equal(t, []int{1}, *codes)
}

func TestAppendFlagsIntoFile(t *testing.T) {
	snapshotFlags(t)

	path := filepath.Join(t.TempDir(), "out.flags")
	require.True(t, AppendFlagsIntoFile(path, "myprog"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "myprog\n"))
	assert.Contains(t, content, "--io_test_port=7070\n")
	assert.NotContains(t, content, "--flagfile=")

	// Appends, not truncates.
	require.True(t, AppendFlagsIntoFile(path, ""))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), len(content))
}

func TestReadFromFlagsFile(t *testing.T) {
	snapshotFlags(t)
	captureExit(t)
	captureStderr(t)

	SetCommandLineOption("io_test_port", "2020")
	path := filepath.Join(t.TempDir(), "state.flags")
	require.True(t, AppendFlagsIntoFile(path, ""))

	SetCommandLineOption("io_test_port", "3030")
	require.True(t, ReadFromFlagsFile(path, false))
	assert.Equal(t, int32(2020), *ioTestPort)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{"toml", "json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			snapshotFlags(t)

			SetCommandLineOption("io_test_port", "4545")
			SetCommandLineOption("io_test_name", "beta")
			SetCommandLineOption("io_test_rate", "2.25")
			SetCommandLineOption("io_test_on", "true")

			path := filepath.Join(t.TempDir(), "flags."+ext)
			require.NoError(t, SaveFlagsToFile(path))

			SetCommandLineOption("io_test_port", "1")
			SetCommandLineOption("io_test_name", "gamma")
			SetCommandLineOption("io_test_rate", "9")
			SetCommandLineOption("io_test_on", "false")

			require.NoError(t, LoadFlagsFromFile(path))
			assert.Equal(t, int32(4545), *ioTestPort)
			assert.Equal(t, "beta", *ioTestName)
			assert.Equal(t, 2.25, *ioTestRate)
			assert.True(t, *ioTestOn)
		})
	}
}

// Names in the file with no registered flag are ignored, so one file
// can serve several programs.
func TestLoadFlagsFromFileIgnoresUnknown(t *testing.T) {
	snapshotFlags(t)

	path := filepath.Join(t.TempDir(), "mixed.toml")
	require.NoError(t, os.WriteFile(path,
		[]byte("io_test_port = 6060\nsomeone_elses_flag = \"x\"\n"), 0644))

	require.NoError(t, LoadFlagsFromFile(path))
	assert.Equal(t, int32(6060), *ioTestPort)
}

func TestLoadFlagsFromFileCollectsErrors(t *testing.T) {
	snapshotFlags(t)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path,
		[]byte("io_test_port = \"notanint\"\nio_test_name = \"kept\"\n"), 0644))

	err := LoadFlagsFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io_test_port")

	// The good entries still applied.
	assert.Equal(t, "kept", *ioTestName)
	assert.Equal(t, int32(7070), *ioTestPort)
}

func TestDetectFileFormat(t *testing.T) {
	assert.Equal(t, "toml", detectFileFormat("a/b.toml"))
	assert.Equal(t, "toml", detectFileFormat("b.TML"))
	assert.Equal(t, "json", detectFileFormat("c.json"))
	assert.Equal(t, "yaml", detectFileFormat("d.yml"))
	assert.Equal(t, "", detectFileFormat("e.conf"))

	assert.Equal(t, "json", detectFormatFromContent([]byte(`{"a": 1}`)))
	assert.Equal(t, "toml", detectFormatFromContent([]byte("[section]\na = 1\n")))
}
