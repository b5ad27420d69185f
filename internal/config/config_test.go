package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emr-stepcon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("AWS_REGION", "")

	path := writeTempConfig(t, `
region: us-east-1
cluster_id: j-ABC123
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "j-ABC123", cfg.ClusterID)
	assert.Empty(t, cfg.Credentials)
}

func TestLoadFile_MissingRegionFails(t *testing.T) {
	// Isolate from ambient AWS environment.
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	path := writeTempConfig(t, "cluster_id: j-ABC123\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_EnvRegionOverride(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")

	path := writeTempConfig(t, "region: us-east-1\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoadFile_IncompleteCredentials(t *testing.T) {
	path := writeTempConfig(t, `
region: us-east-1
credentials:
  accessKeyId: AKIA123
`)
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	t.Setenv("AWS_REGION", "")

	path := filepath.Join(t.TempDir(), "out.yaml")
	in := &Config{Region: "us-west-2", ClusterID: "j-XYZ"}
	require.NoError(t, WriteFile(path, in))

	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in.Region, out.Region)
	assert.Equal(t, in.ClusterID, out.ClusterID)
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	t.Setenv("EMR_STEPCON_TIMEOUT_CREATE", "")
	t.Setenv("EMR_STEPCON_RETRY_MAX_ATTEMPTS", "")

	timeouts := LoadTimeouts()
	assert.Equal(t, 10*time.Minute, timeouts.Create)
	assert.Equal(t, 2*time.Second, timeouts.PollInitial)
	assert.Equal(t, 30*time.Second, timeouts.PollMax)
	assert.Equal(t, 5, timeouts.RetryMaxAttempts)
}

func TestLoadTimeouts_EnvOverrides(t *testing.T) {
	t.Setenv("EMR_STEPCON_TIMEOUT_CREATE", "3m")
	t.Setenv("EMR_STEPCON_RETRY_MAX_ATTEMPTS", "2")
	t.Setenv("EMR_STEPCON_POLL_INITIAL", "not-a-duration")

	timeouts := LoadTimeouts()
	assert.Equal(t, 3*time.Minute, timeouts.Create)
	assert.Equal(t, 2, timeouts.RetryMaxAttempts)
	assert.Equal(t, 2*time.Second, timeouts.PollInitial, "invalid value falls back to default")
}
