package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/NoonWatt/solarscan-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set solarscan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		fmt.Printf("catalog_path: %s\n", c.CatalogPath)
		if c.OutputDir != "" {
			fmt.Printf("output_dir: %s\n", c.OutputDir)
		}
		fmt.Printf("outlier_threshold: %.1f\n", c.OutlierThreshold)
		fmt.Printf("missing_warn_pct: %.1f\n", c.MissingWarnPct)
		fmt.Printf("key_columns: %s\n", strings.Join(c.Keys(), ", "))
		fmt.Printf("server_addr: %s\n", c.ServerAddr)
		fmt.Printf("log_level: %s\n", c.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		switch key {
		case "catalog_path":
			c.CatalogPath = val
		case "output_dir":
			c.OutputDir = val
		case "outlier_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for outlier_threshold: %v", val)
			}
			c.OutlierThreshold = f
		case "missing_warn_pct":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid float for missing_warn_pct: %v", val)
			}
			c.MissingWarnPct = f
		case "key_columns":
			var cols []string
			for _, part := range strings.Split(val, ",") {
				if p := strings.TrimSpace(part); p != "" {
					cols = append(cols, p)
				}
			}
			if len(cols) == 0 {
				return fmt.Errorf("key_columns needs at least one column name")
			}
			c.KeyColumns = cols
		case "server_addr":
			c.ServerAddr = val
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "error":
				c.LogLevel = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
