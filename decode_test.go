// FILE: flags/decode_test.go
package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	decodeTestHost  = String("decode_test_host", "localhost", "host exercised by decode tests")
	decodeTestPort  = Int32("decode_test_port", 5432, "port exercised by decode tests")
	decodeTestRatio = Float64("decode_test_ratio", 0.5, "ratio exercised by decode tests")
	decodeTestTLS   = Bool("decode_test_tls", true, "tls toggle exercised by decode tests")
)

func TestScan(t *testing.T) {
	snapshotFlags(t)
	SetCommandLineOption("decode_test_port", "6543")

	var cfg struct {
		Host  string  `flag:"decode_test_host"`
		Port  int32   `flag:"decode_test_port"`
		Ratio float64 `flag:"decode_test_ratio"`
		TLS   bool    `flag:"decode_test_tls"`
	}
	require.NoError(t, Scan(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, int32(6543), cfg.Port)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.True(t, cfg.TLS)
}

// Weak typing widens and converts where the values allow it.
func TestScanWeakTyping(t *testing.T) {
	snapshotFlags(t)

	var cfg struct {
		Port int    `flag:"decode_test_port"`
		TLS  string `flag:"decode_test_tls"`
	}
	require.NoError(t, Scan(&cfg))

	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "1", cfg.TLS)
}

func TestScanRejectsNonPointer(t *testing.T) {
	var cfg struct{}
	err := Scan(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-nil pointer")
}
