package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/morita/chartdrill/internal/catalog"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose a study session",
}

var planQuickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Timed session mixing reviews, slow answers, misses, and new questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		seconds, _ := cmd.Flags().GetInt("seconds")
		if seconds <= 0 {
			seconds = e.cfg.QuickSessionSeconds
		}
		questions, err := e.svc.QuickSession(cmd.Context(), seconds)
		if err != nil {
			return err
		}
		return printPlan(questions, e.cfg.TargetTimes())
	},
}

var planReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review-only session of due and recently missed questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = e.cfg.ReviewMax
		}
		questions, err := e.svc.ReviewSession(cmd.Context(), count)
		if err != nil {
			return err
		}
		return printPlan(questions, e.cfg.TargetTimes())
	},
}

var planSpeedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Speed drill of correct-but-slow questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = e.cfg.SpeedMax
		}
		questions, err := e.svc.SpeedSession(cmd.Context(), count)
		if err != nil {
			return err
		}
		return printPlan(questions, e.cfg.TargetTimes())
	},
}

var planWeaknessCmd = &cobra.Command{
	Use:   "weakness",
	Short: "Weakness test ordered by miss and overtime score",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = e.cfg.WeaknessCount
		}
		questions, err := e.svc.WeaknessTest(cmd.Context(), count)
		if err != nil {
			return err
		}
		return printPlan(questions, e.cfg.TargetTimes())
	},
}

func init() {
	planQuickCmd.Flags().Int("seconds", 0, "Target session length in seconds")
	planReviewCmd.Flags().Int("count", 0, "Maximum number of questions")
	planSpeedCmd.Flags().Int("count", 0, "Maximum number of questions")
	planWeaknessCmd.Flags().Int("count", 0, "Number of questions")

	planCmd.AddCommand(planQuickCmd)
	planCmd.AddCommand(planReviewCmd)
	planCmd.AddCommand(planSpeedCmd)
	planCmd.AddCommand(planWeaknessCmd)
}

func printPlan(questions []catalog.Question, targets catalog.TargetTimes) error {
	if len(questions) == 0 {
		fmt.Println("No questions matched. Answer a few questions first.")
		return nil
	}

	total := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tQUESTION\tCATEGORY\tDIFFICULTY\tTARGET")
	for i, q := range questions {
		t := targets.For(q)
		total += t
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%ds\n", i+1, q.ID, q.Category, q.Difficulty, t)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d questions, estimated %dm%02ds\n", len(questions), total/60, total%60)
	return nil
}
