package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, "sub", DefaultStateName), cfg.StatePath)
	assert.Equal(t, " ", cfg.Keys.Toggle)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateBackfillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	data := "api_url = \"http://tasks.internal:8080/api/todos\"\n[keys]\nquit = \"x\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "http://tasks.internal:8080/api/todos", cfg.APIURL)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "a", cfg.Keys.Add)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultTimeout, cfg.Timeout())
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("api_url = ["), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestTimeoutIsOffByDefault(t *testing.T) {
	cfg, err := LoadOrCreate(filepath.Join(t.TempDir(), DefaultConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.Equal(t, time.Duration(0), DefaultTimeout)
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"3s", 3 * time.Second},
		{"", 0},
		{"0", 0},
		{"0s", 0},
		{"soon", 0},
		{"-1s", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{RequestTimeout: tt.in}.Timeout(), "request_timeout %q", tt.in)
	}
}
