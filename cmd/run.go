package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kmensah/riddl/internal/api"
	"github.com/kmensah/riddl/internal/app"
)

// runApp builds the Remote Client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	return app.Run(client)
}

// newClient resolves configuration (env, then --base-url flag), opens the
// persisted session jar, and wires up the client.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}

	if cfg.SessionFile == "" {
		p, err := api.DefaultSessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolve session file: %w", err)
		}
		cfg.SessionFile = p
	}

	jar := api.NewSessionJar(cfg.SessionFile)
	return api.NewClient(cfg, jar, newLogger()), nil
}

// newLogger returns a file-backed logger when RIDDL_LOG is set. The TUI
// owns stdout, so there is nowhere else to log.
func newLogger() zerolog.Logger {
	path := os.Getenv("RIDDL_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
