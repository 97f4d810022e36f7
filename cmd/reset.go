package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kmensah/riddl/internal/api"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the current session and drop the local credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.ConfigFromEnv()
		if u, _ := cmd.Flags().GetString("base-url"); u != "" {
			cfg.BaseURL = u
		}
		if cfg.SessionFile == "" {
			p, err := api.DefaultSessionPath()
			if err != nil {
				return fmt.Errorf("resolve session file: %w", err)
			}
			cfg.SessionFile = p
		}

		jar := api.NewSessionJar(cfg.SessionFile)
		client := api.NewClient(cfg, jar, newLogger())

		msg, err := client.Reset(context.Background())

		// Drop the local credential even when the server is unreachable,
		// otherwise a dead session can never be shed.
		if base, perr := url.Parse(cfg.BaseURL); perr == nil {
			jar.Clear(base)
		}

		if err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		fmt.Println(msg)
		return nil
	},
}
