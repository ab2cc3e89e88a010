package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "server.yaml", `
backend: supabase
supabase_url: https://example.supabase.co
supabase_key: key
availability_sweep_schedule: "@every 5m"
s3_presign_ttl: 1h
log_debug: true
`)

	c := &Config{}
	c.LoadDefaults()
	require.NoError(t, parseFile(c, []string{"-config", path}))

	assert.Equal(t, BackendSupabase, c.Backend)
	assert.Equal(t, "https://example.supabase.co", c.SupabaseURL)
	assert.Equal(t, "key", c.SupabaseKey)
	assert.Equal(t, "@every 5m", c.AvailabilitySweepSchedule)
	assert.Equal(t, time.Hour, c.S3PresignTTL)
	assert.True(t, c.LogDebug)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC, "missing keys keep defaults")
}

func TestParseFile_JSONNumericDuration(t *testing.T) {
	path := writeFile(t, "server.json", `{"request_timeout": 5000000000}`)

	c := &Config{}
	c.LoadDefaults()
	require.NoError(t, parseFile(c, []string{"-c=" + path}))

	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestParseFile_NoFlag(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	require.NoError(t, parseFile(c, []string{"-a", ":1"}))
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
}

func TestParseFile_Errors(t *testing.T) {
	c := &Config{}

	err := parseFile(c, []string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	bad := writeFile(t, "bad.json", `{"backend": `)
	err = parseFile(c, []string{"-c", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
