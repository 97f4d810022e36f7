package api

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds Remote Client configuration.
type Config struct {
	// BaseURL is the root of the riddle service API. Default: http://localhost:8000.
	BaseURL string

	// Timeout bounds a single request round-trip. A stalled call fails with a
	// transport error when it elapses, so the caller is never stuck waiting.
	// Default: 15s.
	Timeout time.Duration

	// SessionFile is where the session cookie is persisted between runs.
	// Empty means the default XDG path.
	SessionFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("RIDDL_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("RIDDL_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if f := os.Getenv("RIDDL_SESSION_FILE"); f != "" {
		cfg.SessionFile = f
	}

	return cfg
}

// DefaultSessionPath resolves the session cookie file path in priority order:
// 1. RIDDL_SESSION_FILE environment variable
// 2. $XDG_DATA_HOME/riddl/session.json
// 3. ~/.local/share/riddl/session.json
func DefaultSessionPath() (string, error) {
	if p := os.Getenv("RIDDL_SESSION_FILE"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "riddl", "session.json")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
