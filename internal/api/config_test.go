package api

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("RIDDL_BASE_URL", "https://riddles.example.com")
	t.Setenv("RIDDL_TIMEOUT", "5s")
	t.Setenv("RIDDL_SESSION_FILE", "/tmp/riddl-session.json")

	cfg := ConfigFromEnv()
	assert.Equal(t, "https://riddles.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/riddl-session.json", cfg.SessionFile)
}

func TestConfigFromEnvIgnoresBadTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a duration", "soon"},
		{"zero", "0s"},
		{"negative", "-3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RIDDL_TIMEOUT", tt.value)
			cfg := ConfigFromEnv()
			assert.Equal(t, DefaultConfig().Timeout, cfg.Timeout)
		})
	}
}

func TestDefaultSessionPath(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "session.json")
		t.Setenv("RIDDL_SESSION_FILE", p)

		got, err := DefaultSessionPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p), "parent directory must be created")
	})

	t.Run("xdg data home", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("RIDDL_SESSION_FILE", "")
		t.Setenv("XDG_DATA_HOME", dataHome)

		got, err := DefaultSessionPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dataHome, "riddl", "session.json"), got)
	})
}
