package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"souq-core/core/quote"
	"souq-core/core/types"
	"souq-core/internal/errors"
)

func sampleQuote() *quote.Quote {
	return &quote.Quote{
		ProductID:   "prd-dates",
		ProductName: "Khalas Dates",
		Quantity:    5,
		Currency:    "SAR",
		TierIndex:   0,
		UnitPrice:   types.FixedPrice(decimal.RequireFromString("100")),
		Subtotal:    types.FixedPrice(decimal.RequireFromString("500")),
		Shipping:    decimal.RequireFromString("25"),
		Total:       types.FixedPrice(decimal.RequireFromString("525")),
		MinQuantity: 1,
	}
}

func TestRenderQuoteCLI(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderQuote(&buf, sampleQuote(), FormatCLI, types.LocaleEN); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Khalas Dates", "500 SAR", "525 SAR", "Shipping"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderQuoteCLIArabic(t *testing.T) {
	q := sampleQuote()
	q.UnitPrice = types.NegotiablePrice()
	q.Subtotal = types.NegotiablePrice()
	q.Total = types.NegotiablePrice()

	var buf bytes.Buffer
	if err := RenderQuote(&buf, q, FormatCLI, types.LocaleAR); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "قابل للتفاوض") {
		t.Errorf("arabic negotiable label missing:\n%s", out)
	}
	if !strings.Contains(out, "الكمية") {
		t.Errorf("arabic quantity label missing:\n%s", out)
	}
}

func TestRenderQuoteBelowMinimum(t *testing.T) {
	q := sampleQuote()
	q.BelowMinimum = true
	q.MinQuantity = 10

	var buf bytes.Buffer
	_ = RenderQuote(&buf, q, FormatCLI, types.LocaleEN)
	if !strings.Contains(buf.String(), "Minimum order quantity is 10") {
		t.Errorf("minimum warning missing:\n%s", buf.String())
	}
}

func TestRenderQuoteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderQuote(&buf, sampleQuote(), FormatJSON, types.LocaleEN); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["product_id"] != "prd-dates" {
		t.Errorf("product_id = %v", decoded["product_id"])
	}
	// Fixed prices encode as JSON numbers
	if decoded["subtotal"] != float64(500) {
		t.Errorf("subtotal = %v (%T)", decoded["subtotal"], decoded["subtotal"])
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatCLI {
		t.Errorf("empty format = %v, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("json format = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
