// Package pricing implements quantity-tiered price resolution for
// product display and cart handoff. The resolver is a pure function
// over a caller-supplied tier list; it never sorts, caches, or mutates
// its input.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"souq-core/core/types"
)

// Resolve selects the price tier applicable to a query and computes the
// display figures.
//
// The first tier (in supplied order) whose bracket contains the
// quantity wins. When no bracket contains it the first tier is used as
// a fallback so the page still shows a price, with BelowMinimum set
// when the quantity is under every bracket. An empty tier list yields
// an unresolved result in the negotiable display state; that is a valid
// business outcome, not an error.
func Resolve(tiers []types.PriceTier, query types.PricingQuery) types.PricingResult {
	result := types.PricingResult{
		TierIndex:    -1,
		UnitPrice:    types.NegotiablePrice(),
		Subtotal:     types.NegotiablePrice(),
		Shipping:     decimal.Zero,
		BelowMinimum: IsBelowMinimum(tiers, query.Quantity),
	}
	if len(tiers) == 0 {
		return result
	}

	index := 0
	for i, tier := range tiers {
		if tier.Contains(query.Quantity) {
			index = i
			break
		}
	}

	matched := tiers[index]
	result.Tier = &matched
	result.TierIndex = index
	result.UnitPrice = matched.UnitPrice
	result.Subtotal = matched.UnitPrice.Mul(int64(query.Quantity))
	result.Shipping = surchargeFor(matched, query.DeliveryLocation)
	return result
}

// surchargeFor looks up the destination surcharge on a matched tier.
// Matching is exact after trimming and case folding; no fuzzy matching.
func surchargeFor(tier types.PriceTier, location string) decimal.Decimal {
	location = strings.TrimSpace(location)
	if location == "" {
		return decimal.Zero
	}
	for _, ls := range tier.Locations {
		if strings.EqualFold(strings.TrimSpace(ls.Location), location) {
			return ls.Surcharge
		}
	}
	return decimal.Zero
}

// IsBelowMinimum reports whether a quantity is under the smallest
// MinQty across all tiers. Callers surface this as a blocking
// validation error before add-to-cart.
func IsBelowMinimum(tiers []types.PriceTier, quantity int) bool {
	if len(tiers) == 0 {
		return false
	}
	return quantity < MinimumQuantity(tiers)
}

// MinimumQuantity returns the smallest MinQty across all tiers, or 1
// for an empty tier list
func MinimumQuantity(tiers []types.PriceTier) int {
	min := 0
	for _, tier := range tiers {
		if min == 0 || tier.MinQty < min {
			min = tier.MinQty
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// AvailableLocations collects the distinct delivery destinations across
// all tiers, trimmed, first occurrence order preserved
func AvailableLocations(tiers []types.PriceTier) []string {
	var locations []string
	seen := make(map[string]struct{})
	for _, tier := range tiers {
		for _, ls := range tier.Locations {
			name := strings.TrimSpace(ls.Location)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			locations = append(locations, name)
		}
	}
	return locations
}
