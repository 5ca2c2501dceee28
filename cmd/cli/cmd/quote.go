// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"souq-core/adapters/catalog/hclcat"
	"souq-core/core/output"
	"souq-core/core/quote"
	"souq-core/core/types"
	"souq-core/internal/config"
	"souq-core/internal/logging"
)

var (
	quoteCatalogDir string
	quoteProductID  string
	quoteQuantity   int
	quoteLocation   string
	quoteFormat     string
	quoteLocale     string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a product price for a quantity and destination",
	Long: `Resolve the applicable price tier for a product and quantity,
with the per-destination shipping surcharge when a delivery location
is given.

Examples:
  souq quote --product prd-dates --qty 5
  souq quote --product prd-dates --qty 25 --location Riyadh --format json
  souq quote --catalog ./fixtures --product prd-oud --qty 100 --locale ar`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteCatalogDir, "catalog", "c", "", "catalog directory (default from config)")
	quoteCmd.Flags().StringVarP(&quoteProductID, "product", "p", "", "product ID to quote")
	quoteCmd.Flags().IntVarP(&quoteQuantity, "qty", "q", 1, "requested quantity")
	quoteCmd.Flags().StringVarP(&quoteLocation, "location", "l", "", "delivery location")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringVar(&quoteLocale, "locale", "", "display language (en, ar)")
	_ = quoteCmd.MarkFlagRequired("product")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	dir := quoteCatalogDir
	if dir == "" {
		dir = cfg.Catalog.Dir
	}
	format, err := output.ParseFormat(orDefault(quoteFormat, cfg.Output.DefaultFormat))
	if err != nil {
		return err
	}
	locale := types.ParseLocale(orDefault(quoteLocale, cfg.Output.DefaultLocale))

	registry, err := hclcat.NewLoader(cfg.Catalog.DefaultCurrency).LoadDir(dir)
	if err != nil {
		return err
	}

	engine := quote.NewEngine(registry, cfg.Catalog.DefaultCurrency)
	q, err := engine.ForProduct(quote.Request{
		ProductID:        quoteProductID,
		Quantity:         quoteQuantity,
		DeliveryLocation: quoteLocation,
		Locale:           locale,
	})
	if err != nil {
		return err
	}

	logging.Debug("quote resolved",
		zap.String("product", quoteProductID),
		zap.Int("tier", q.TierIndex))

	if err := output.RenderQuote(os.Stdout, q, format, locale); err != nil {
		return err
	}
	if q.BelowMinimum {
		return fmt.Errorf("quantity %d is below the minimum order quantity %d", quoteQuantity, q.MinQuantity)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
