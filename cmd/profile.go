package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/export"
	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

var (
	profOutputPath string
	profXLSXPath   string
	profCorr       bool
	profOutlierThr float64
	profWarnPct    float64
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Profile a sensor CSV: summary statistics, missing values, outliers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		t, err := dataset.ReadCSV(args[0], c.Keys())
		if err != nil {
			return err
		}
		opt := stats.ProfileOptions{
			Columns:          c.Keys(),
			MissingWarnPct:   c.MissingWarnPct,
			OutlierThreshold: c.OutlierThreshold,
			Correlations:     profCorr,
		}
		if cmd.Flags().Changed("outlier-threshold") {
			opt.OutlierThreshold = profOutlierThr
		}
		if cmd.Flags().Changed("missing-warn-pct") {
			opt.MissingWarnPct = profWarnPct
		}
		p := stats.NewProfile(t, opt)

		written := false
		if profXLSXPath != "" {
			if err := export.WriteProfileWorkbook(p, profXLSXPath); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Printf("✓ Wrote profile workbook to %s\n", profXLSXPath)
			written = true
		}
		if profOutputPath != "" {
			if err := os.WriteFile(profOutputPath, []byte(p.Markdown()), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote profile to %s\n", profOutputPath)
			written = true
		}
		if !written {
			fmt.Println(p.Markdown())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profOutputPath, "output", "o", "", "optional path to write the profile (Markdown)")
	profileCmd.Flags().StringVar(&profXLSXPath, "xlsx", "", "optional path to write the profile as an Excel workbook")
	profileCmd.Flags().BoolVar(&profCorr, "correlations", false, "include a Pearson correlation matrix")
	profileCmd.Flags().Float64Var(&profOutlierThr, "outlier-threshold", stats.DefaultOutlierThreshold, "|z| threshold for the outlier report")
	profileCmd.Flags().Float64Var(&profWarnPct, "missing-warn-pct", 5, "missing percentage above which a column is reported")
}
