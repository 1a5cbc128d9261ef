package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/morita/chartdrill/internal/catalog"
	"github.com/morita/chartdrill/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a catalog file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s is valid: %d questions\n", args[0], c.Len())
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		targets := cfg.TargetTimes()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "QUESTION\tCATEGORY\tDIFFICULTY\tTARGET")
		for _, q := range c.Questions() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%ds\n", q.ID, q.Category, q.Difficulty, targets.For(q))
		}
		return w.Flush()
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
