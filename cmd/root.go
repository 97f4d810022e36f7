package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riddl",
	Short: "Terminal riddle game",
	Long:  "Riddl is a terminal client for a riddle service: the server deals the riddles, checks the answers, and keeps the score.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; a missing file is the normal case.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Riddle server base URL (overrides RIDDL_BASE_URL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
