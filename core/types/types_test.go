package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantNegotiable bool
		want           string
	}{
		{"plain number", "100", false, "100"},
		{"decimal with spaces", " 99.95 ", false, "99.95"},
		{"empty", "", true, NegotiableLabel},
		{"sentinel word", "Negotiable", true, NegotiableLabel},
		{"arbitrary text", "contact supplier", true, NegotiableLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePrice(tt.raw)
			if p.Negotiable != tt.wantNegotiable {
				t.Errorf("Negotiable = %v, want %v", p.Negotiable, tt.wantNegotiable)
			}
			if p.String() != tt.want {
				t.Errorf("String = %q, want %q", p.String(), tt.want)
			}
		})
	}
}

func TestPriceArithmeticPropagatesNegotiable(t *testing.T) {
	n := NegotiablePrice()
	if !n.Mul(10).Negotiable || !n.Add(decimal.NewFromInt(5)).Negotiable {
		t.Error("arithmetic on negotiable must stay negotiable")
	}

	p := FixedPrice(decimal.RequireFromString("12.5"))
	if got := p.Mul(4).String(); got != "50" {
		t.Errorf("12.5 x 4 = %s, want 50", got)
	}
	if got := p.Add(decimal.RequireFromString("0.5")).String(); got != "13" {
		t.Errorf("12.5 + 0.5 = %s, want 13", got)
	}
}

func TestPriceJSON(t *testing.T) {
	out, err := json.Marshal(FixedPrice(decimal.RequireFromString("80")))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "80" {
		t.Errorf("fixed price encodes as %s, want 80", out)
	}

	out, _ = json.Marshal(NegotiablePrice())
	if string(out) != `"negotiable"` {
		t.Errorf("negotiable encodes as %s", out)
	}

	var p Price
	if err := json.Unmarshal([]byte(`"100.5"`), &p); err != nil || p.String() != "100.5" {
		t.Errorf("string price decoded to %s (%v)", p, err)
	}
	if err := json.Unmarshal([]byte(`null`), &p); err != nil || !p.Negotiable {
		t.Errorf("null decoded to %s (%v)", p, err)
	}
}

func TestTierContains(t *testing.T) {
	nine := 9
	bounded := PriceTier{MinQty: 5, MaxQty: &nine}
	unbounded := PriceTier{MinQty: 10}

	tests := []struct {
		tier PriceTier
		qty  int
		want bool
	}{
		{bounded, 4, false},
		{bounded, 5, true},
		{bounded, 9, true},
		{bounded, 10, false},
		{unbounded, 9, false},
		{unbounded, 10, true},
		{unbounded, 1 << 20, true},
	}
	for _, tt := range tests {
		if got := tt.tier.Contains(tt.qty); got != tt.want {
			t.Errorf("Contains(%d) on min=%d = %v, want %v", tt.qty, tt.tier.MinQty, got, tt.want)
		}
	}
}

func TestLocalizedTextFallback(t *testing.T) {
	both := LocalizedText{EN: "Dates", AR: "تمور"}
	if both.In(LocaleAR) != "تمور" || both.In(LocaleEN) != "Dates" {
		t.Error("direct lookup failed")
	}

	enOnly := LocalizedText{EN: "Dates"}
	if enOnly.In(LocaleAR) != "Dates" {
		t.Error("missing Arabic must fall back to English")
	}

	arOnly := LocalizedText{AR: "تمور"}
	if arOnly.In(LocaleEN) != "تمور" {
		t.Error("missing English must fall back to Arabic")
	}
}

func TestParseLocale(t *testing.T) {
	if ParseLocale("ar") != LocaleAR {
		t.Error("ar not recognized")
	}
	if ParseLocale("fr") != LocaleEN {
		t.Error("unknown locale must default to en")
	}
}
