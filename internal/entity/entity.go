// Package entity holds the four read-only collections the console searches:
// trucks, customers, orders and products.
package entity

import (
	"fmt"
	"strings"
)

// Kind names one of the four entity collections.
type Kind string

const (
	KindTruck    Kind = "truck"
	KindCustomer Kind = "customer"
	KindOrder    Kind = "order"
	KindProduct  Kind = "product"
)

// Kinds lists every kind in field order.
var Kinds = []Kind{KindTruck, KindCustomer, KindOrder, KindProduct}

// ParseKind accepts a kind name in any case.
func ParseKind(value string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", value)
}

// Label is the display name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindTruck:
		return "Truck"
	case KindCustomer:
		return "Customer"
	case KindOrder:
		return "Order"
	case KindProduct:
		return "Product"
	default:
		return string(k)
	}
}

// Tag is the upper-case badge shown next to palette results.
func (k Kind) Tag() string {
	return strings.ToUpper(string(k))
}

// Detail is one labelled, searchable attribute of an entity.
type Detail struct {
	Label string
	Value string
}

// Entity is a searchable record. ID is unique within its kind and stable for
// the life of the process.
type Entity struct {
	ID      string
	Code    string
	Name    string
	Aliases []string
	Details []Detail

	// TareWeight is the last recorded empty weight of a truck, in pounds.
	TareWeight int
	// UnitPrice is the price per ton of a product.
	UnitPrice float64
}

// Display renders the short "code · name" form used in the form fields.
func (e Entity) Display() string {
	return fmt.Sprintf("%s · %s", e.Code, e.Name)
}

// Detail returns the value of the labelled attribute, if present.
func (e Entity) Detail(label string) string {
	for _, d := range e.Details {
		if d.Label == label {
			return d.Value
		}
	}
	return ""
}

// Haystack builds the lower-cased text a query is scored against.
func Haystack(e Entity) string {
	parts := make([]string, 0, 3+len(e.Aliases)+len(e.Details))
	parts = append(parts, e.ID, e.Code, e.Name)
	parts = append(parts, e.Aliases...)
	for _, d := range e.Details {
		if d.Value != "" {
			parts = append(parts, d.Value)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// PaletteHaystack prefixes the kind so "truck" or "product" narrows the
// palette to one collection.
func PaletteHaystack(kind Kind, e Entity) string {
	return string(kind) + " " + Haystack(e)
}

// Next returns the kind that follows k in field order, wrapping around.
func (k Kind) Next() Kind {
	for i, known := range Kinds {
		if known == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}
