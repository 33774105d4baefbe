package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NoonWatt/solarscan-cli/internal/compare"
	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

var (
	cmpMetric string
	cmpFilter string
	cmpMin    float64
	cmpMax    float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a metric across all registered datasets",
	Long: `Compare summarizes one metric (mean, median, standard deviation) for every
dataset in the catalog, optionally restricted to rows whose filter-column
value lies inside a range, e.g. --filter GHI --min 0 --max 500.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		ds := cat.List()
		if len(ds) == 0 {
			return fmt.Errorf("no datasets registered; use 'solarscan datasets add' first")
		}

		var filter *compare.RangeFilter
		if cmpFilter != "" {
			filter = &compare.RangeFilter{Column: cmpFilter}
			if cmd.Flags().Changed("min") {
				v := cmpMin
				filter.Min = &v
			}
			if cmd.Flags().Changed("max") {
				v := cmpMax
				filter.Max = &v
			}
		}

		rows := make([]compare.Row, 0, len(ds))
		for _, d := range ds {
			t, err := dataset.ReadCSV(d.Path, c.Keys())
			if err != nil {
				return err
			}
			row, err := compare.Summarize(d.Name, t, cmpMetric, filter)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		fmt.Print(compare.Markdown(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&cmpMetric, "metric", "GHI", "metric to compare (e.g. GHI, DNI, DHI)")
	compareCmd.Flags().StringVar(&cmpFilter, "filter", "", "column to range-filter rows by before summarizing")
	compareCmd.Flags().Float64Var(&cmpMin, "min", 0, "lower bound for --filter")
	compareCmd.Flags().Float64Var(&cmpMax, "max", 0, "upper bound for --filter")
}
