// Package types - Product and locale types
package types

// Locale selects the display language. It is passed explicitly wherever
// localized text is produced, never read from ambient state.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// ParseLocale normalizes a locale string, defaulting to English
func ParseLocale(s string) Locale {
	if s == string(LocaleAR) {
		return LocaleAR
	}
	return LocaleEN
}

// LocalizedText carries an English/Arabic pair with cross-fallback:
// a missing translation falls back to the other language.
type LocalizedText struct {
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// In returns the text for a locale, falling back to the other language
// when the requested one is empty
func (t LocalizedText) In(locale Locale) string {
	if locale == LocaleAR {
		if t.AR != "" {
			return t.AR
		}
		return t.EN
	}
	if t.EN != "" {
		return t.EN
	}
	return t.AR
}

// Product is a catalog entry with its bilingual fields and price
// schedule, as delivered by the marketplace data store
type Product struct {
	// ID uniquely identifies the product
	ID string `json:"id"`

	// Name is the bilingual product name
	Name LocalizedText `json:"name"`

	// Description is the bilingual product description
	Description LocalizedText `json:"description"`

	// Category is the bilingual category label
	Category LocalizedText `json:"category"`

	// SupplierID identifies the owning supplier
	SupplierID string `json:"supplier_id,omitempty"`

	// SupplierName is the supplier display name
	SupplierName string `json:"supplier_name,omitempty"`

	// Currency is the ISO currency code for all tier prices
	Currency string `json:"currency"`

	// Tiers is the quantity-bracketed price schedule, ascending MinQty
	Tiers []PriceTier `json:"tiers"`
}
