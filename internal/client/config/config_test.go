package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trollterminator/Miniprojekt/internal/flagx"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api/", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.NoError(t, c.Validate())
}

func TestLoad_DefaultsWithoutArgs(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/api/", cfg.APIBaseURL)
}

func TestLoad_JSONThenFlags(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"http://json:1/api","request_timeout":"3s"}`), 0o600))

	cfg, err := load([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "http://json:1/api/", cfg.APIBaseURL, "trailing slash is added")
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)

	cfg, err = load([]string{"-config", path, "-a", "http://flag:2/api/", "-t", "7"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:2/api/", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	tests := []struct {
		name string
		args []string
	}{
		{"relative url", []string{"-a", "api/"}},
		{"zero timeout", []string{"-t", "0"}},
		{"bad timeout", []string{"-t", "soon"}},
		{"missing file", []string{"-c", filepath.Join(t.TempDir(), "nope.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.args)
			assert.Error(t, err)
		})
	}
}
