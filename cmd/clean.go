package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NoonWatt/solarscan-cli/internal/clean"
	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/export"
)

var (
	clOutputPath string
	clOutputDir  string
	clReport     bool
	clOutlierThr float64
)

var cleanCmd = &cobra.Command{
	Use:   "clean <files...>",
	Short: "Clean sensor CSVs: impute missing readings, drop comments, clip negatives",
	Long: `Clean runs the cleaning pipeline over each input file: outlier rows are
flagged for the report but kept, missing key-column entries are replaced with
the column median, the free-text Comments column is dropped if present, and
key-column values are floored at zero. Row count and order never change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		var files []string
		seen := map[string]struct{}{}
		for _, arg := range args {
			matches, _ := filepath.Glob(arg)
			if len(matches) == 0 {
				// treat as literal path if exists
				if _, err := os.Stat(arg); err == nil {
					matches = []string{arg}
				}
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Strings(files)
		if clOutputPath != "" && len(files) > 1 {
			return fmt.Errorf("--output only applies to a single input file; use --output-dir")
		}

		opt := clean.DefaultOptions()
		opt.KeyColumns = c.Keys()
		opt.OutlierThreshold = c.OutlierThreshold
		if cmd.Flags().Changed("outlier-threshold") {
			opt.OutlierThreshold = clOutlierThr
		}
		cleaner := clean.New(opt)

		for _, path := range files {
			t, err := dataset.ReadCSV(path, opt.KeyColumns)
			if err != nil {
				return err
			}
			rep, err := cleaner.Clean(t)
			if err != nil {
				return err
			}
			out := cleanedPath(path, c.OutputDir)
			if clOutputPath != "" {
				out = clOutputPath
			}
			if err := export.WriteCSV(t, out); err != nil {
				return err
			}
			fmt.Printf("✓ Cleaned %s → %s (%s)\n", filepath.Base(path), out, rep.Summary())
			if clReport {
				repPath := strings.TrimSuffix(out, filepath.Ext(out)) + ".report.yaml"
				if err := rep.Save(repPath); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote cleaning report to %s\n", repPath)
			}
		}
		return nil
	},
}

// cleanedPath derives the output path for a cleaned file: <name>_clean.csv
// next to the input, or inside outputDir when configured.
func cleanedPath(input, outputDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + "_clean.csv"
	if clOutputDir != "" {
		return filepath.Join(clOutputDir, name)
	}
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&clOutputPath, "output", "o", "", "output CSV path (single input only; default <name>_clean.csv)")
	cleanCmd.Flags().StringVar(&clOutputDir, "output-dir", "", "directory for cleaned CSVs (overrides config output_dir)")
	cleanCmd.Flags().BoolVar(&clReport, "report", false, "write a YAML cleaning report next to each output")
	cleanCmd.Flags().Float64Var(&clOutlierThr, "outlier-threshold", 3, "|z| threshold for the outlier report")
}
