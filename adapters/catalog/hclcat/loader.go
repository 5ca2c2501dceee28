// Package hclcat loads product catalogs from HCL files. Seed and
// fixture catalogs for the CLI and the quote server are written as
// product blocks; tier order in the file is the resolution order.
package hclcat

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"souq-core/core/catalog"
	"souq-core/core/types"
	"souq-core/internal/errors"
	"souq-core/internal/logging"

	"go.uber.org/zap"
)

type catalogFile struct {
	Products []productBlock `hcl:"product,block"`
}

type productBlock struct {
	ID           string      `hcl:"id,label"`
	NameEN       string      `hcl:"name_en"`
	NameAR       *string     `hcl:"name_ar"`
	DescEN       *string     `hcl:"description_en"`
	DescAR       *string     `hcl:"description_ar"`
	CategoryEN   *string     `hcl:"category_en"`
	CategoryAR   *string     `hcl:"category_ar"`
	SupplierID   *string     `hcl:"supplier_id"`
	SupplierName *string     `hcl:"supplier_name"`
	Currency     *string     `hcl:"currency"`
	Tiers        []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	MinQty    int             `hcl:"min_qty"`
	MaxQty    *int            `hcl:"max_qty"`
	UnitPrice *string         `hcl:"unit_price"`
	Locations []locationBlock `hcl:"location,block"`
}

type locationBlock struct {
	Name      string `hcl:"name,label"`
	Surcharge string `hcl:"surcharge"`
}

// Loader parses HCL catalog files into a product registry
type Loader struct {
	parser          *hclparse.Parser
	defaultCurrency string
}

// NewLoader creates a catalog loader
func NewLoader(defaultCurrency string) *Loader {
	return &Loader{
		parser:          hclparse.NewParser(),
		defaultCurrency: defaultCurrency,
	}
}

// LoadDir loads every .hcl file under a directory into a new registry
func (l *Loader) LoadDir(dir string) (*catalog.Registry, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Catalog("failed to scan catalog directory", err).
			WithContext("dir", dir)
	}

	registry := catalog.NewRegistry()
	for _, path := range files {
		if err := l.loadFile(path, registry); err != nil {
			return nil, err
		}
	}

	logging.Info("catalog loaded",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("products", registry.Len()))
	return registry, nil
}

// LoadBytes parses one in-memory HCL document into a registry
func (l *Loader) LoadBytes(filename string, src []byte) (*catalog.Registry, error) {
	registry := catalog.NewRegistry()
	if err := l.decode(filename, src, registry); err != nil {
		return nil, err
	}
	return registry, nil
}

func (l *Loader) loadFile(path string, registry *catalog.Registry) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Catalog("failed to read catalog file", err).
			WithContext("file", path)
	}
	return l.decode(path, src, registry)
}

func (l *Loader) decode(filename string, src []byte, registry *catalog.Registry) error {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return errors.Catalog("invalid catalog HCL", diags).
			WithContext("file", filename)
	}

	var parsed catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return errors.Catalog("invalid catalog schema", diags).
			WithContext("file", filename)
	}

	for _, pb := range parsed.Products {
		product, err := l.toProduct(pb)
		if err != nil {
			return err
		}
		if err := registry.Add(product); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) toProduct(pb productBlock) (*types.Product, error) {
	product := &types.Product{
		ID:           pb.ID,
		Name:         types.LocalizedText{EN: pb.NameEN, AR: deref(pb.NameAR)},
		Description:  types.LocalizedText{EN: deref(pb.DescEN), AR: deref(pb.DescAR)},
		Category:     types.LocalizedText{EN: deref(pb.CategoryEN), AR: deref(pb.CategoryAR)},
		SupplierID:   deref(pb.SupplierID),
		SupplierName: deref(pb.SupplierName),
		Currency:     l.defaultCurrency,
	}
	if pb.Currency != nil && *pb.Currency != "" {
		product.Currency = *pb.Currency
	}

	for i, tb := range pb.Tiers {
		if tb.MinQty < 1 {
			return nil, errors.InvalidInputf(
				"product %s tier %d: min_qty must be at least 1", pb.ID, i+1)
		}
		if tb.MaxQty != nil && *tb.MaxQty < tb.MinQty {
			return nil, errors.InvalidInputf(
				"product %s tier %d: max_qty %d below min_qty %d", pb.ID, i+1, *tb.MaxQty, tb.MinQty)
		}

		tier := types.PriceTier{
			MinQty:    tb.MinQty,
			MaxQty:    tb.MaxQty,
			UnitPrice: types.NegotiablePrice(),
		}
		if tb.UnitPrice != nil {
			tier.UnitPrice = types.ParsePrice(*tb.UnitPrice)
		}

		for _, lb := range tb.Locations {
			surcharge, err := decimal.NewFromString(strings.TrimSpace(lb.Surcharge))
			if err != nil {
				return nil, errors.InvalidInputf(
					"product %s tier %d: bad surcharge %q for %s", pb.ID, i+1, lb.Surcharge, lb.Name)
			}
			tier.Locations = append(tier.Locations, types.LocationSurcharge{
				Location:  strings.TrimSpace(lb.Name),
				Surcharge: surcharge,
			})
		}

		product.Tiers = append(product.Tiers, tier)
	}

	return product, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
