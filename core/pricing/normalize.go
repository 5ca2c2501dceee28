// Package pricing - Boundary normalization of external price data
// The marketplace data store delivers price ranges as loose JSON:
// numbers may arrive as strings, upper bounds and surcharge tables may
// be absent, and prices may be non-numeric (negotiable). Everything is
// converted once, here, into the strict PriceTier shape; the resolver
// never sees raw data.
package pricing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"souq-core/core/types"
	"souq-core/internal/errors"
)

// RawPriceRange mirrors one entry of the store's priceranges column
type RawPriceRange struct {
	MinQty    json.RawMessage `json:"minQty"`
	MaxQty    json.RawMessage `json:"maxQty"`
	Price     json.RawMessage `json:"price"`
	Locations []RawLocation   `json:"locations"`
}

// RawLocation mirrors one per-destination surcharge entry
type RawLocation struct {
	Location      string          `json:"location"`
	LocationPrice json.RawMessage `json:"locationPrice"`
}

// DecodeTiers parses a raw priceranges JSON array into strict tiers.
// It fails only when the payload is not a JSON array; malformed
// optional fields inside entries degrade per NormalizeTier.
func DecodeTiers(data []byte) ([]types.PriceTier, error) {
	var raw []RawPriceRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("price ranges payload is not an array", err)
	}
	return NormalizeTiers(raw), nil
}

// NormalizeTiers converts raw price ranges in supplied order
func NormalizeTiers(raw []RawPriceRange) []types.PriceTier {
	tiers := make([]types.PriceTier, 0, len(raw))
	for _, r := range raw {
		tiers = append(tiers, NormalizeTier(r))
	}
	return tiers
}

// NormalizeTier converts one raw range. Missing or malformed fields
// take their documented defaults: MinQty 1, MaxQty unbounded, price
// negotiable, unparseable surcharges zero.
func NormalizeTier(raw RawPriceRange) types.PriceTier {
	tier := types.PriceTier{
		MinQty:    1,
		UnitPrice: types.NegotiablePrice(),
	}

	if v, ok := rawInt(raw.MinQty); ok && v >= 1 {
		tier.MinQty = v
	}
	if v, ok := rawInt(raw.MaxQty); ok && v >= tier.MinQty {
		tier.MaxQty = &v
	}
	if amount, ok := rawDecimal(raw.Price); ok {
		tier.UnitPrice = types.FixedPrice(amount)
	}

	for _, loc := range raw.Locations {
		name := strings.TrimSpace(loc.Location)
		if name == "" {
			continue
		}
		surcharge, ok := rawDecimal(loc.LocationPrice)
		if !ok {
			surcharge = decimal.Zero
		}
		tier.Locations = append(tier.Locations, types.LocationSurcharge{
			Location:  name,
			Surcharge: surcharge,
		})
	}

	return tier
}

// rawInt reads a JSON number or numeric string as an int
func rawInt(data json.RawMessage) (int, bool) {
	s, ok := rawNumericString(data)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate "10.0" style values from spreadsheet imports
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, false
		}
		v = int(f)
	}
	return v, true
}

// rawDecimal reads a JSON number or numeric string as a decimal
func rawDecimal(data json.RawMessage) (decimal.Decimal, bool) {
	s, ok := rawNumericString(data)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// rawNumericString unwraps a raw JSON value to its numeric text.
// null, absent values, and empty strings report not-ok.
func rawNumericString(data json.RawMessage) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return "", false
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return "", false
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return "", false
		}
	}
	return s, true
}
