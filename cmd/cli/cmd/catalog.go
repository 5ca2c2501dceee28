// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"souq-core/adapters/catalog/hclcat"
	"souq-core/core/pricing"
	"souq-core/core/types"
	"souq-core/internal/config"
)

var catalogDir string

// catalogCmd inspects HCL product catalogs
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect product catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// catalogListCmd lists the products of a catalog directory
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in a catalog directory",
	RunE:  runCatalogList,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().StringVarP(&catalogDir, "catalog", "c", "", "catalog directory (default from config)")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	dir := orDefault(catalogDir, cfg.Catalog.Dir)

	registry, err := hclcat.NewLoader(cfg.Catalog.DefaultCurrency).LoadDir(dir)
	if err != nil {
		return err
	}

	locale := types.ParseLocale(cfg.Output.DefaultLocale)
	for _, p := range registry.List() {
		minQty := pricing.MinimumQuantity(p.Tiers)
		fmt.Printf("%-16s %-32s %d tier(s), MOQ %d, %s\n",
			p.ID, p.Name.In(locale), len(p.Tiers), minQty, p.Currency)
	}
	if registry.Len() == 0 {
		fmt.Printf("No products found in %s\n", dir)
	}
	return nil
}
