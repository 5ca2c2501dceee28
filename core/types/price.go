// Package types - Shared marketplace domain types
package types

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NegotiableLabel is the wire representation of a price with no fixed
// numeric value. It is resolved through direct supplier contact, never
// coerced to zero.
const NegotiableLabel = "negotiable"

// Price is a unit price that is either a fixed decimal amount or
// negotiable. The zero value is negotiable.
type Price struct {
	Amount     decimal.Decimal
	Negotiable bool
}

// FixedPrice creates a fixed numeric price
func FixedPrice(amount decimal.Decimal) Price {
	return Price{Amount: amount}
}

// NegotiablePrice creates the negotiable sentinel
func NegotiablePrice() Price {
	return Price{Negotiable: true}
}

// ParsePrice parses a price from its string form. Empty or non-numeric
// input yields the negotiable sentinel rather than an error.
func ParsePrice(raw string) Price {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, NegotiableLabel) {
		return NegotiablePrice()
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return NegotiablePrice()
	}
	return FixedPrice(amount)
}

// Mul multiplies a fixed price by a quantity. Negotiable propagates.
func (p Price) Mul(quantity int64) Price {
	if p.Negotiable {
		return p
	}
	return FixedPrice(p.Amount.Mul(decimal.NewFromInt(quantity)))
}

// Add adds a fixed amount to the price. Negotiable propagates.
func (p Price) Add(amount decimal.Decimal) Price {
	if p.Negotiable {
		return p
	}
	return FixedPrice(p.Amount.Add(amount))
}

// String returns the display form: the decimal amount, or "negotiable"
func (p Price) String() string {
	if p.Negotiable {
		return NegotiableLabel
	}
	return p.Amount.String()
}

// MarshalJSON encodes a fixed price as a JSON number and the negotiable
// sentinel as the string "negotiable"
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Negotiable {
		return json.Marshal(NegotiableLabel)
	}
	return []byte(p.Amount.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or the
// string "negotiable"
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = NegotiablePrice()
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return err
		}
		*p = ParsePrice(unquoted)
		return nil
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		*p = NegotiablePrice()
		return nil
	}
	*p = FixedPrice(amount)
	return nil
}
