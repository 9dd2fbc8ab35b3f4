package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trollterminator/Miniprojekt/internal/flagx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "minireddit.db", c.DatabaseDSN)
	assert.Equal(t, models.VoteModeNet, c.VoteMode)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.HealthCheckInterval)
	assert.True(t, c.SeedOnStart)
	assert.NoError(t, c.Validate())
}

func TestLoad_DefaultsWithoutArgs(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	c, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, models.VoteModeNet, c.VoteMode)
}

func TestParseFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := parseFlags(&c, []string{
		"-a", ":9090", "-g", ":9091", "-s", "postgres", "-d", "postgres://x",
		"-m", "tally", "-l", "debug", "-i", "3", "-seed=false", "-unknown", "v",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.EndpointAddrHTTP)
	assert.Equal(t, ":9091", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres", c.StorageDriver)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, models.VoteModeTally, c.VoteMode)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 3*time.Second, c.HealthCheckInterval)
	assert.False(t, c.SeedOnStart)
}

func TestParseFlags_BadInterval(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := parseFlags(&c, []string{"-i", "abc"})
	assert.ErrorContains(t, err, "parse flags")
}

func TestParseJson(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":    "www.example:9000",
		"storage_driver":        "postgres",
		"database_dsn":          "postgres://db",
		"vote_mode":             "tally",
		"health_check_interval": "30s",
		"seed_on_start":         false,
	})

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseJson(&c, []string{"-c", path}))

	assert.Equal(t, "www.example:9000", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC, "absent keys keep defaults")
	assert.Equal(t, "postgres", c.StorageDriver)
	assert.Equal(t, "postgres://db", c.DatabaseDSN)
	assert.Equal(t, models.VoteModeTally, c.VoteMode)
	assert.Equal(t, 30*time.Second, c.HealthCheckInterval)
	assert.False(t, c.SeedOnStart)
}

func TestParseJson_NoFileNoChanges(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	var c Config
	c.LoadDefaults()
	want := c

	require.NoError(t, parseJson(&c, nil))
	assert.Equal(t, want, c)
}

func TestParseJson_Errors(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

	var c Config
	assert.ErrorContains(t, parseJson(&c, []string{"-config", bad}), "parse config")
	assert.ErrorContains(t, parseJson(&c, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}), "read config")
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	path := writeTempJSON(t, map[string]any{"endpoint_addr_http": ":7000", "vote_mode": "tally"})

	c, err := load([]string{"-c", path, "-a", ":7001"})
	require.NoError(t, err)
	assert.Equal(t, ":7001", c.EndpointAddrHTTP)
	assert.Equal(t, models.VoteModeTally, c.VoteMode)
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()

	c.VoteMode = "score"
	assert.ErrorContains(t, c.Validate(), "vote mode")

	c.LoadDefaults()
	c.StorageDriver = "mysql"
	assert.ErrorContains(t, c.Validate(), "storage driver")

	c.LoadDefaults()
	c.HealthCheckInterval = 0
	assert.ErrorContains(t, c.Validate(), "interval")
}
