// Package types - Tiered pricing types
package types

import (
	"github.com/shopspring/decimal"
)

// LocationSurcharge is an additional delivery cost for one destination
type LocationSurcharge struct {
	// Location is the destination name as provided by the supplier
	Location string `json:"location"`

	// Surcharge is added on top of unit price x quantity
	Surcharge decimal.Decimal `json:"surcharge"`
}

// PriceTier is one quantity bracket of a product's price schedule.
// Tiers arrive pre-sorted by ascending MinQty from the catalog boundary;
// the resolver selects by predicate match and never re-sorts.
type PriceTier struct {
	// MinQty is the inclusive lower quantity bound (>= 1)
	MinQty int `json:"min_qty"`

	// MaxQty is the inclusive upper quantity bound (nil = unbounded)
	MaxQty *int `json:"max_qty,omitempty"`

	// UnitPrice is the price per unit within this bracket
	UnitPrice Price `json:"unit_price"`

	// Locations holds per-destination shipping surcharges
	Locations []LocationSurcharge `json:"locations,omitempty"`
}

// Contains reports whether a quantity falls inside the bracket
func (t PriceTier) Contains(quantity int) bool {
	if quantity < t.MinQty {
		return false
	}
	return t.MaxQty == nil || quantity <= *t.MaxQty
}

// PricingQuery asks for the applicable price of a quantity, optionally
// with a delivery destination for surcharge lookup
type PricingQuery struct {
	// Quantity is the requested order quantity (>= 1)
	Quantity int `json:"quantity"`

	// DeliveryLocation is the destination name ("" = no delivery chosen)
	DeliveryLocation string `json:"delivery_location,omitempty"`
}

// PricingResult is the resolved price bracket for a query
type PricingResult struct {
	// Tier is the matched bracket (nil when no tiers were supplied)
	Tier *PriceTier `json:"tier,omitempty"`

	// TierIndex is the position of the matched bracket (-1 when none)
	TierIndex int `json:"tier_index"`

	// UnitPrice is the bracket's price, or the negotiable sentinel
	UnitPrice Price `json:"unit_price"`

	// Subtotal is UnitPrice x Quantity, or negotiable
	Subtotal Price `json:"subtotal"`

	// Shipping is the destination surcharge (zero without a match)
	Shipping decimal.Decimal `json:"shipping"`

	// BelowMinimum is set when the quantity is under every bracket's
	// MinQty; callers block add-to-cart on it
	BelowMinimum bool `json:"below_minimum"`
}

// Resolved reports whether a bracket was matched
func (r PricingResult) Resolved() bool {
	return r.Tier != nil
}
