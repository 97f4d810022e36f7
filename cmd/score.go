package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the score of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		res, err := client.Score(context.Background())
		if err != nil {
			return fmt.Errorf("fetch score: %w", err)
		}

		fmt.Printf("Score:        %d\n", res.Score)
		fmt.Printf("Answered:     %d\n", res.TotalAnswered)
		fmt.Printf("Correct:      %d\n", res.CorrectAnswers)
		fmt.Printf("Success rate: %.1f%%\n", res.SuccessRate)
		if res.Active {
			fmt.Printf("\nCurrent riddle: %s\n", res.CurrentQuestion)
		} else {
			fmt.Println("\nNo game in progress.")
		}
		return nil
	},
}
