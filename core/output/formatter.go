// Package output renders quote results for the CLI and for machine
// consumers. The quote engine computes; this package only formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"souq-core/core/quote"
	"souq-core/core/types"
	"souq-core/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable text block
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat normalizes a format string
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCLI, "":
		return FormatCLI, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.InvalidInputf("unknown output format: %q", s)
	}
}

// RenderQuote writes a quote in the requested format
func RenderQuote(w io.Writer, q *quote.Quote, format Format, locale types.Locale) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	default:
		return renderQuoteCLI(w, q, locale)
	}
}

func renderQuoteCLI(w io.Writer, q *quote.Quote, locale types.Locale) error {
	name := q.ProductName
	if name == "" {
		name = q.ProductID
	}
	if name != "" {
		fmt.Fprintf(w, "%s\n", name)
	}

	fmt.Fprintf(w, "  %-12s %d\n", label(locale, "Quantity", "الكمية"), q.Quantity)
	fmt.Fprintf(w, "  %-12s %s\n", label(locale, "Unit price", "سعر الوحدة"), money(q.UnitPrice, q.Currency, locale))
	fmt.Fprintf(w, "  %-12s %s\n", label(locale, "Subtotal", "المجموع الفرعي"), money(q.Subtotal, q.Currency, locale))
	fmt.Fprintf(w, "  %-12s %s %s\n", label(locale, "Shipping", "الشحن"), q.Shipping.String(), q.Currency)
	fmt.Fprintf(w, "  %-12s %s\n", label(locale, "Total", "الإجمالي"), money(q.Total, q.Currency, locale))

	if q.BelowMinimum {
		fmt.Fprintf(w, "  ! %s %d\n",
			label(locale, "Minimum order quantity is", "الحد الأدنى لكمية الطلب هو"), q.MinQuantity)
	}
	return nil
}

// money renders a price with its currency, or the localized negotiable
// label
func money(p types.Price, currency string, locale types.Locale) string {
	if p.Negotiable {
		return label(locale, "negotiable - contact supplier", "قابل للتفاوض - تواصل مع المورد")
	}
	return fmt.Sprintf("%s %s", p.Amount.String(), currency)
}

func label(locale types.Locale, en, ar string) string {
	if locale == types.LocaleAR {
		return ar
	}
	return en
}
