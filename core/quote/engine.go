// Package quote composes the catalog and the pricing resolver into the
// figures a product page or cart needs: unit price, subtotal, shipping
// and total for one product/quantity/destination triple.
package quote

import (
	"github.com/shopspring/decimal"

	"souq-core/core/catalog"
	"souq-core/core/pricing"
	"souq-core/core/types"
	"souq-core/internal/errors"
)

// Engine produces quotes against a product registry
type Engine struct {
	registry        *catalog.Registry
	defaultCurrency string
}

// NewEngine creates a quote engine
func NewEngine(registry *catalog.Registry, defaultCurrency string) *Engine {
	return &Engine{
		registry:        registry,
		defaultCurrency: defaultCurrency,
	}
}

// Request asks for a quote on a catalog product
type Request struct {
	// ProductID is the catalog product
	ProductID string

	// Quantity is the requested order quantity (>= 1)
	Quantity int

	// DeliveryLocation is the optional destination for surcharge lookup
	DeliveryLocation string

	// Locale selects the language of display fields
	Locale types.Locale
}

// Quote is the cart-handoff record for one product and quantity
type Quote struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Currency    string `json:"currency"`

	// TierIndex is the matched price bracket (-1 when unresolved)
	TierIndex int `json:"tier_index"`

	UnitPrice types.Price     `json:"unit_price"`
	Subtotal  types.Price     `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`

	// Total is Subtotal plus Shipping; negotiable when the unit price is
	Total types.Price `json:"total"`

	// BelowMinimum blocks add-to-cart; MinQuantity is the threshold to
	// surface in the validation message
	BelowMinimum bool `json:"below_minimum"`
	MinQuantity  int  `json:"min_quantity"`

	// Locations lists the destinations the supplier quotes shipping for
	Locations []string `json:"locations,omitempty"`
}

// ForProduct resolves a quote for a catalog product
func (e *Engine) ForProduct(req Request) (*Quote, error) {
	if req.Quantity < 1 {
		return nil, errors.InvalidInputf("quantity must be at least 1, got %d", req.Quantity)
	}

	product, err := e.registry.Get(req.ProductID)
	if err != nil {
		return nil, err
	}

	q := e.ForTiers(product.Tiers, types.PricingQuery{
		Quantity:         req.Quantity,
		DeliveryLocation: req.DeliveryLocation,
	})
	q.ProductID = product.ID
	q.ProductName = product.Name.In(req.Locale)
	if product.Currency != "" {
		q.Currency = product.Currency
	}
	return q, nil
}

// ForTiers resolves a quote directly from a tier list, for callers that
// already hold normalized tiers instead of a catalog product
func (e *Engine) ForTiers(tiers []types.PriceTier, query types.PricingQuery) *Quote {
	result := pricing.Resolve(tiers, query)

	total := result.Subtotal
	if !total.Negotiable && result.Shipping.Sign() != 0 {
		total = total.Add(result.Shipping)
	}

	return &Quote{
		Quantity:     query.Quantity,
		Currency:     e.defaultCurrency,
		TierIndex:    result.TierIndex,
		UnitPrice:    result.UnitPrice,
		Subtotal:     result.Subtotal,
		Shipping:     result.Shipping,
		Total:        total,
		BelowMinimum: result.BelowMinimum,
		MinQuantity:  pricing.MinimumQuantity(tiers),
		Locations:    pricing.AvailableLocations(tiers),
	}
}
