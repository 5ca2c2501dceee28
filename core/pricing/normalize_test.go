package pricing

import (
	"testing"

	"souq-core/internal/errors"
)

func TestDecodeTiersLooseShapes(t *testing.T) {
	// Numbers as strings, missing maxQty, string price, mixed entries
	payload := []byte(`[
		{"minQty": "1", "maxQty": 9, "price": "100.50",
		 "locations": [{"location": " Riyadh ", "locationPrice": "25"}]},
		{"minQty": 10, "price": 80},
		{"minQty": "20", "maxQty": null, "price": "contact us"}
	]`)

	tiers, err := DecodeTiers(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiers) != 3 {
		t.Fatalf("len = %d, want 3", len(tiers))
	}

	first := tiers[0]
	if first.MinQty != 1 {
		t.Errorf("MinQty = %d, want 1", first.MinQty)
	}
	if first.MaxQty == nil || *first.MaxQty != 9 {
		t.Errorf("MaxQty = %v, want 9", first.MaxQty)
	}
	if first.UnitPrice.String() != "100.5" {
		t.Errorf("UnitPrice = %s, want 100.5", first.UnitPrice)
	}
	if len(first.Locations) != 1 || first.Locations[0].Location != "Riyadh" {
		t.Errorf("Locations = %+v", first.Locations)
	}
	if first.Locations[0].Surcharge.String() != "25" {
		t.Errorf("Surcharge = %s, want 25", first.Locations[0].Surcharge)
	}

	second := tiers[1]
	if second.MaxQty != nil {
		t.Errorf("missing maxQty must stay unbounded, got %v", *second.MaxQty)
	}
	if second.UnitPrice.String() != "80" {
		t.Errorf("UnitPrice = %s, want 80", second.UnitPrice)
	}

	third := tiers[2]
	if !third.UnitPrice.Negotiable {
		t.Errorf("non-numeric price must be negotiable, got %s", third.UnitPrice)
	}
	if third.MaxQty != nil {
		t.Error("null maxQty must stay unbounded")
	}
}

func TestDecodeTiersDefaults(t *testing.T) {
	tiers, err := DecodeTiers([]byte(`[{}]`))
	if err != nil {
		t.Fatal(err)
	}
	tier := tiers[0]
	if tier.MinQty != 1 {
		t.Errorf("default MinQty = %d, want 1", tier.MinQty)
	}
	if tier.MaxQty != nil {
		t.Error("default MaxQty must be unbounded")
	}
	if !tier.UnitPrice.Negotiable {
		t.Error("default price must be negotiable")
	}
	if tier.Locations != nil {
		t.Errorf("default locations = %+v, want none", tier.Locations)
	}
}

func TestDecodeTiersRejectsNonArray(t *testing.T) {
	for _, payload := range []string{`{"minQty": 1}`, `"tiers"`, `42`} {
		_, err := DecodeTiers([]byte(payload))
		if !errors.IsType(err, errors.TypeParsing) {
			t.Errorf("payload %s: expected PARSING_ERROR, got %v", payload, err)
		}
	}
}

func TestNormalizeTierFieldHandling(t *testing.T) {
	t.Run("zero minQty lifted to 1", func(t *testing.T) {
		tiers, _ := DecodeTiers([]byte(`[{"minQty": 0, "price": 10}]`))
		if tiers[0].MinQty != 1 {
			t.Errorf("MinQty = %d, want 1", tiers[0].MinQty)
		}
	})

	t.Run("maxQty below minQty dropped", func(t *testing.T) {
		tiers, _ := DecodeTiers([]byte(`[{"minQty": 10, "maxQty": 5, "price": 10}]`))
		if tiers[0].MaxQty != nil {
			t.Errorf("inverted bound kept: %v", *tiers[0].MaxQty)
		}
	})

	t.Run("spreadsheet float quantity", func(t *testing.T) {
		tiers, _ := DecodeTiers([]byte(`[{"minQty": "10.0", "price": 10}]`))
		if tiers[0].MinQty != 10 {
			t.Errorf("MinQty = %d, want 10", tiers[0].MinQty)
		}
	})

	t.Run("unparseable surcharge becomes zero", func(t *testing.T) {
		tiers, _ := DecodeTiers([]byte(
			`[{"minQty": 1, "price": 10, "locations": [{"location": "Riyadh", "locationPrice": "call"}]}]`))
		if len(tiers[0].Locations) != 1 || !tiers[0].Locations[0].Surcharge.IsZero() {
			t.Errorf("Locations = %+v", tiers[0].Locations)
		}
	})

	t.Run("blank location dropped", func(t *testing.T) {
		tiers, _ := DecodeTiers([]byte(
			`[{"minQty": 1, "price": 10, "locations": [{"location": "   ", "locationPrice": 5}]}]`))
		if len(tiers[0].Locations) != 0 {
			t.Errorf("Locations = %+v, want none", tiers[0].Locations)
		}
	})
}
