// FILE: flags/access_test.go
package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accessTestPort = Int32("access_test_port", 8080, "port exercised by access tests")
	accessTestTags = String("access_test_tags", "a,b", "tags exercised by access tests")
)

func TestGetCommandLineOption(t *testing.T) {
	snapshotFlags(t)

	val, ok := GetCommandLineOption("access_test_port")
	require.True(t, ok)
	assert.Equal(t, "8080", val)

	_, ok = GetCommandLineOption("access_test_missing")
	assert.False(t, ok)
}

func TestGetCommandLineFlagInfo(t *testing.T) {
	snapshotFlags(t)

	info, ok := GetCommandLineFlagInfo("access_test_port")
	require.True(t, ok)
	assert.Equal(t, "access_test_port", info.Name)
	assert.Equal(t, "int32", info.Type)
	assert.Equal(t, "port exercised by access tests", info.Description)
	assert.Equal(t, "8080", info.CurrentValue)
	assert.Equal(t, "8080", info.DefaultValue)
	assert.True(t, info.IsDefault)
	assert.False(t, info.HasValidator)
	assert.Contains(t, info.Filename, "access_test.go")
	assert.Same(t, accessTestPort, info.Ref.(*int32))

	_, ok = GetCommandLineFlagInfo("access_test_missing")
	assert.False(t, ok)
}

func TestGetCommandLineFlagInfoOrDie(t *testing.T) {
	info := GetCommandLineFlagInfoOrDie("access_test_tags")
	assert.Equal(t, "a,b", info.CurrentValue)

	codes := captureExit(t)
	buf := captureStderr(t)
	GetCommandLineFlagInfoOrDie("access_test_missing")
	assert.Equal(t, []int{1}, *codes)
	assert.Contains(t, buf.String(), "FATAL ERROR: flag name 'access_test_missing' doesn't exist")
}

func TestGetAllFlags(t *testing.T) {
	infos := GetAllFlags()
	require.NotEmpty(t, infos)

	// Sorted by declaring file first, then name.
	for i := 1; i < len(infos); i++ {
		prev, cur := infos[i-1], infos[i]
		if prev.Filename == cur.Filename {
			assert.Less(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Filename, cur.Filename)
		}
	}

	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}
	assert.True(t, names["access_test_port"])
	assert.True(t, names["flagfile"]) // the package's own flags list too
}

func TestTypedAccessors(t *testing.T) {
	snapshotFlags(t)

	port, err := GetInt32("access_test_port")
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)

	tags, err := GetString("access_test_tags")
	require.NoError(t, err)
	assert.Equal(t, "a,b", tags)

	// Wrong type and missing flag both error.
	_, err = GetBool("access_test_port")
	assert.ErrorContains(t, err, "is of type int32, not bool")

	_, err = GetUint64("access_test_missing")
	assert.ErrorContains(t, err, "not registered")
}

func TestSetThenGetRoundTrip(t *testing.T) {
	snapshotFlags(t)

	require.NotEmpty(t, SetCommandLineOption("access_test_port", "9999"))
	port, err := GetInt32("access_test_port")
	require.NoError(t, err)
	assert.Equal(t, int32(9999), port)
	assert.Equal(t, int32(9999), *accessTestPort)
}
