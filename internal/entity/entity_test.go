package entity

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestHaystackIncludesKindSpecificFields(t *testing.T) {
	t.Parallel()

	truck := Entity{
		ID:      "TRK-1024",
		Code:    "1024",
		Name:    "Kenworth T880",
		Aliases: []string{"blue", "East Gate"},
		Details: []Detail{{Label: "Driver", Value: "Ana Lopez"}, {Label: "Phone", Value: ""}},
	}
	got := Haystack(truck)
	want := "trk-1024 1024 kenworth t880 blue east gate ana lopez"
	if got != want {
		t.Fatalf("Haystack() = %q want %q", got, want)
	}
	if palette := PaletteHaystack(KindTruck, truck); !strings.HasPrefix(palette, "truck trk-1024") {
		t.Fatalf("palette haystack missing kind prefix: %q", palette)
	}
}

func TestIndexLookup(t *testing.T) {
	t.Parallel()

	idx := NewIndex(
		[]Entity{{ID: "TRK-1", Name: "first"}, {ID: "TRK-1", Name: "duplicate"}, {ID: "TRK-2"}},
		nil,
		[]Entity{{ID: "ORD-1"}},
		nil,
	)
	got, ok := idx.Lookup(KindTruck, "TRK-1")
	if !ok || got.Name != "first" {
		t.Fatalf("Lookup() = %+v, %v want first entry", got, ok)
	}
	if _, ok := idx.Lookup(KindCustomer, "TRK-1"); ok {
		t.Fatal("lookup must not cross kinds")
	}
	if _, ok := idx.Lookup(KindOrder, "ORD-404"); ok {
		t.Fatal("unknown id should not resolve")
	}
	if idx.Len(KindTruck) != 2 || len(idx.All(KindTruck)) != 2 {
		t.Fatalf("duplicates should be dropped, got %d", idx.Len(KindTruck))
	}
	if idx.Len(KindProduct) != 0 {
		t.Fatalf("empty collection should have no entries")
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	if k, err := ParseKind(" Product "); err != nil || k != KindProduct {
		t.Fatalf("ParseKind() = %q, %v", k, err)
	}
	if _, err := ParseKind("trailer"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	first := Seed(rand.New(rand.NewSource(7)))
	second := Seed(rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed should build the same catalog")
	}

	idx := first.Index()
	for _, kind := range Kinds {
		if got := idx.Len(kind); got != 4+generatedPerKind {
			t.Fatalf("%s: got %d entities want %d", kind, got, 4+generatedPerKind)
		}
	}
	truck, ok := idx.Lookup(KindTruck, "TRK-2021")
	if !ok || truck.TareWeight != 31200 {
		t.Fatalf("named truck missing or wrong tare: %+v", truck)
	}
	if truck.Detail("Driver") == "" {
		t.Fatal("named truck should carry generated details")
	}
	product, ok := idx.Lookup(KindProduct, "PRD-A1")
	if !ok || product.UnitPrice <= 0 {
		t.Fatalf("named product missing or unpriced: %+v", product)
	}
}
