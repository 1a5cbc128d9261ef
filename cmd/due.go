package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show questions due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		entries, err := e.svc.Due(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		now := time.Now()
		fmt.Printf("%d questions due for review:\n\n", len(entries))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "QUESTION\tSTAGE\tDUE SINCE\tOVERDUE")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\t%.1f days\n",
				entry.QuestionID, entry.Stage,
				entry.NextReviewAt.Format("2006-01-02"),
				entry.OverdueDays(now))
		}
		return w.Flush()
	},
}
