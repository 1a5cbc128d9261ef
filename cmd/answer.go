package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Record an answer and reschedule the question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		correct, _ := cmd.Flags().GetBool("correct")
		choice, _ := cmd.Flags().GetInt("choice")
		elapsed, _ := cmd.Flags().GetDuration("elapsed")

		entry, err := e.svc.RecordAnswer(cmd.Context(), args[0], correct, choice, elapsed)
		if err != nil {
			return err
		}

		outcome := "missed"
		if correct {
			outcome = "correct"
		}
		fmt.Printf("Recorded %s answer for %s (stage %d). Next review %s.\n",
			outcome, entry.QuestionID, entry.Stage,
			entry.NextReviewAt.Format(time.DateOnly))
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Int("choice", 0, "Index of the chosen option")
	answerCmd.Flags().Duration("elapsed", 0, "Time taken to answer (e.g. 42s)")
}
