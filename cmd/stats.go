package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		stats, err := e.svc.CategoryStats(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tATTEMPTS\tCORRECT\tACCURACY\tAVG TIME")
		for _, st := range stats {
			if st.Attempts == 0 {
				fmt.Fprintf(w, "%s\t0\t-\t-\t-\n", st.Category)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%.1fs\n",
				st.Category, st.Attempts, st.Correct,
				st.Accuracy()*100, float64(st.AvgMillis)/1000.0)
		}
		return w.Flush()
	},
}
