package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NoonWatt/solarscan-cli/internal/catalog"
)

var dsCountry string

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage the catalog of registered sensor datasets",
}

var datasetsAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a sensor CSV under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		d, err := cat.Add(args[0], dsCountry, args[1])
		if err != nil {
			return err
		}
		if err := cat.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Registered dataset '%s' (%s)\n", d.Name, d.ID)
		return nil
	},
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		ds := cat.List()
		if len(ds) == 0 {
			fmt.Println("(no datasets)")
			return nil
		}
		for _, d := range ds {
			if d.Country != "" {
				fmt.Printf("- %s (%s): %s\n", d.Name, d.Country, d.Path)
				continue
			}
			fmt.Printf("- %s: %s\n", d.Name, d.Path)
		}
		return nil
	},
}

var datasetsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a dataset from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if err := cat.Remove(args[0]); err != nil {
			return err
		}
		if err := cat.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Removed dataset '%s'\n", args[0])
		return nil
	},
}

func loadCatalog() (*catalog.Catalog, error) {
	c, err := ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Load(c.CatalogPath)
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsAddCmd)
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsRemoveCmd)
	datasetsAddCmd.Flags().StringVar(&dsCountry, "country", "", "country the dataset was recorded in")
}
