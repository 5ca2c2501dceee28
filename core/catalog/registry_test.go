package catalog

import (
	"testing"

	"souq-core/core/types"
	"souq-core/internal/errors"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Add(&types.Product{ID: "prd-1", Name: types.LocalizedText{EN: "Dates"}}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(&types.Product{ID: "prd-2", Name: types.LocalizedText{EN: "Coffee"}}); err != nil {
		t.Fatal(err)
	}

	got, err := r.Get("prd-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name.In(types.LocaleEN) != "Dates" {
		t.Errorf("Name = %q", got.Name.In(types.LocaleEN))
	}

	if _, err := r.Get("prd-404"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRegistryListOrderAndReplace(t *testing.T) {
	r := NewRegistry()
	_ = r.Add(&types.Product{ID: "b"})
	_ = r.Add(&types.Product{ID: "a"})
	_ = r.Add(&types.Product{ID: "b", SupplierName: "updated"})

	list := r.List()
	if len(list) != 2 || r.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("order = [%s %s], want [b a]", list[0].ID, list[1].ID)
	}
	if list[0].SupplierName != "updated" {
		t.Error("replacement did not take effect")
	}
}

func TestRegistryRejectsEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(&types.Product{}); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if err := r.Add(nil); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
