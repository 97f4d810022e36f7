package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the questions asked in the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		res, err := client.History(context.Background())
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}

		if len(res.QuestionsHistory) == 0 {
			fmt.Println("No questions asked yet.")
			return nil
		}

		fmt.Printf("Session %s: %d question(s)\n\n", res.SessionID, res.TotalQuestions)
		for i, entry := range res.QuestionsHistory {
			fmt.Printf("%d. %s\n", i+1, entry.Question)
			if entry.UserAnswer == nil {
				fmt.Println("   (unanswered)")
				continue
			}
			mark := "✗"
			if entry.Correct != nil && *entry.Correct {
				mark = "✓"
			}
			fmt.Printf("   %s %s\n", mark, *entry.UserAnswer)
			if entry.Correct != nil && !*entry.Correct {
				fmt.Printf("   answer: %s\n", entry.CorrectAnswer)
			}
		}
		return nil
	},
}
