package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		recs, err := e.svc.Recommendations(cmd.Context())
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("All caught up — nothing to recommend right now.")
			return nil
		}

		for _, r := range recs {
			fmt.Printf("%s\n  %s\n  %d questions, ~%d min\n\n",
				r.Title, r.Reason, r.Questions, r.EstimatedMinutes)
		}
		return nil
	},
}
