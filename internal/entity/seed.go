package entity

import (
	"fmt"
	"math/rand"
)

// Catalog is the raw seed data for an Index.
type Catalog struct {
	Trucks    []Entity
	Customers []Entity
	Orders    []Entity
	Products  []Entity
}

// Index builds the lookup over the catalog.
func (c Catalog) Index() *Index {
	return NewIndex(c.Trucks, c.Customers, c.Orders, c.Products)
}

const generatedPerKind = 120

var (
	carriers     = []string{"Owner Operator", "ABC Trucking", "Delta Transport", "Metro Haulers", "Quick Haul", "Valley Trucking", "Peak Logistics", "Stone Transport", "River Freight", "Mountain Movers"}
	truckTypes   = []string{"Tri-Axle", "Quad-Axle", "Tandem", "End Dump", "Belly Dump", "Side Dump", "Transfer"}
	drivers      = []string{"Mike Johnson", "Dave Smith", "Carlos Rivera", "Tom Wilson", "Luis Garcia", "Sam Carter", "Ray Brooks", "Ana Lopez", "Joe Miller", "Kim Davis"}
	cities       = []string{"Nashville", "Memphis", "Knoxville", "Chattanooga", "Louisville", "Lexington", "Atlanta", "Birmingham", "Charlotte", "Raleigh"}
	states       = []string{"TN", "KY", "GA", "AL", "NC", "VA", "SC", "FL", "OH", "IN"}
	paymentTerms = []string{"Net 30", "Net 15", "Net 45", "Net 60", "Due on Receipt", "COD"}
	statuses     = []string{"Active", "Active", "Active", "On Hold", "COD Only"}
	jobTypes     = []string{"Commercial", "Residential", "Municipal", "State DOT", "Federal", "Industrial", "Agricultural"}
	streets      = []string{"Main St", "Oak Ave", "Elm Rd", "Pine Blvd", "Cedar Dr", "Industrial Ln", "Commerce St", "Highway Rd"}
	categories   = []string{"Aggregate", "Sand", "Asphalt", "Fill", "Base", "Rip Rap"}
	stockpiles   = []string{"Pit A", "Pit B", "Pit C", "Stockpile 1", "Stockpile 2", "Stockpile 3", "Quarry North", "Quarry South", "Yard 1", "Yard 2"}
	taxCodes     = []string{"Taxable", "Tax Exempt", "Resale", "Government"}
)

// Seed builds the demo catalog: a handful of named records followed by
// generated fleets. The same rng seed always yields the same catalog.
func Seed(rng *rand.Rand) Catalog {
	return Catalog{
		Trucks:    append(namedTrucks(rng), generateTrucks(rng)...),
		Customers: append(namedCustomers(rng), generateCustomers(rng)...),
		Orders:    append(namedOrders(rng), generateOrders(rng)...),
		Products:  append(namedProducts(rng), generateProducts(rng)...),
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("(%d) %d-%d", between(rng, 200, 999), between(rng, 200, 999), between(rng, 1000, 9999))
}

func truckDetails(rng *rand.Rand) []Detail {
	return []Detail{
		{Label: "License", Value: fmt.Sprintf("%s-%d-%c%c", pick(rng, states), between(rng, 1000, 9999), 'A'+rune(rng.Intn(26)), 'A'+rune(rng.Intn(26)))},
		{Label: "Driver", Value: pick(rng, drivers)},
		{Label: "Carrier", Value: pick(rng, carriers)},
		{Label: "Type", Value: pick(rng, truckTypes)},
		{Label: "Phone", Value: phone(rng)},
	}
}

func namedTrucks(rng *rand.Rand) []Entity {
	named := []Entity{
		{ID: "TRK-1024", Code: "1024", Name: "Kenworth T880", Aliases: []string{"blue", "east gate"}, TareWeight: 29880},
		{ID: "TRK-2021", Code: "2021", Name: "Freightliner Cascadia", Aliases: []string{"white", "hopper"}, TareWeight: 31200},
		{ID: "TRK-3141", Code: "3141", Name: "Peterbilt 567", Aliases: []string{"hauler", "cement"}, TareWeight: 30460},
		{ID: "TRK-8810", Code: "8810", Name: "Volvo VNL", Aliases: []string{"north run"}, TareWeight: 31940},
	}
	for i := range named {
		named[i].Details = truckDetails(rng)
	}
	return named
}

func generateTrucks(rng *rand.Rand) []Entity {
	out := make([]Entity, 0, generatedPerKind)
	for i := 0; i < generatedPerKind; i++ {
		out = append(out, Entity{
			ID:         fmt.Sprintf("TRK-%04d", i+1),
			Code:       fmt.Sprint(3000 + i),
			Name:       fmt.Sprintf("Fleet Truck %d", i+1),
			Aliases:    []string{fmt.Sprintf("lane %d", i%8), fmt.Sprintf("bay %d", i%12)},
			Details:    truckDetails(rng),
			TareWeight: between(rng, 28000, 36000) / 20 * 20,
		})
	}
	return out
}

func customerDetails(rng *rand.Rand) []Detail {
	status := pick(rng, statuses)
	terms := pick(rng, paymentTerms)
	if status == "COD Only" {
		terms = "COD"
	}
	return []Detail{
		{Label: "Status", Value: status},
		{Label: "City", Value: pick(rng, cities)},
		{Label: "State", Value: pick(rng, states)},
		{Label: "Phone", Value: phone(rng)},
		{Label: "Terms", Value: terms},
	}
}

func namedCustomers(rng *rand.Rand) []Entity {
	named := []Entity{
		{ID: "CUST-1", Code: "ACME", Name: "Acme Ready Mix", Aliases: []string{"acme", "ready mix"}},
		{ID: "CUST-2", Code: "REDR", Name: "Red Rock Aggregates", Aliases: []string{"rock", "red"}},
		{ID: "CUST-3", Code: "SKYE", Name: "Skyline Earthworks", Aliases: []string{"earth", "sky"}},
		{ID: "CUST-4", Code: "METR", Name: "Metro Paving", Aliases: []string{"paving", "asphalt"}},
	}
	for i := range named {
		named[i].Details = customerDetails(rng)
	}
	return named
}

func generateCustomers(rng *rand.Rand) []Entity {
	out := make([]Entity, 0, generatedPerKind)
	for i := 0; i < generatedPerKind; i++ {
		out = append(out, Entity{
			ID:      fmt.Sprintf("CUST-%04d", i+1),
			Code:    fmt.Sprintf("C%03d", i+10),
			Name:    fmt.Sprintf("Customer Group %d", i+1),
			Aliases: []string{fmt.Sprintf("region %d", i%6), fmt.Sprintf("acct %d", i+100)},
			Details: customerDetails(rng),
		})
	}
	return out
}

func orderDetails(rng *rand.Rand, customer string) []Detail {
	return []Detail{
		{Label: "PO", Value: fmt.Sprintf("PO-%d", between(rng, 10000, 99999))},
		{Label: "Customer", Value: customer},
		{Label: "Job Site", Value: fmt.Sprintf("%d %s", between(rng, 100, 9999), pick(rng, streets))},
		{Label: "Job Type", Value: pick(rng, jobTypes)},
	}
}

func namedOrders(rng *rand.Rand) []Entity {
	named := []Entity{
		{ID: "ORD-4401", Code: "4401", Name: "I-95 Expansion Phase 2", Aliases: []string{"highway"}},
		{ID: "ORD-7730", Code: "7730", Name: "Airport Taxiway Rehab", Aliases: []string{"airport"}},
		{ID: "ORD-9012", Code: "9012", Name: "County Drainage Upgrade", Aliases: []string{"drain", "county"}},
		{ID: "ORD-0210", Code: "0210", Name: "West Loop Commercial Park", Aliases: []string{"west loop"}},
	}
	owners := []string{"Acme Ready Mix", "Skyline Earthworks", "Skyline Earthworks", "Metro Paving"}
	for i := range named {
		named[i].Details = orderDetails(rng, owners[i])
	}
	return named
}

func generateOrders(rng *rand.Rand) []Entity {
	out := make([]Entity, 0, generatedPerKind)
	for i := 0; i < generatedPerKind; i++ {
		out = append(out, Entity{
			ID:      fmt.Sprintf("ORD-%04d", i+1),
			Code:    fmt.Sprint(5000 + i),
			Name:    fmt.Sprintf("Project Load %d", i+1),
			Aliases: []string{fmt.Sprintf("zone %d", i%10), fmt.Sprintf("route %d", i%14)},
			Details: orderDetails(rng, fmt.Sprintf("Customer Group %d", between(rng, 1, generatedPerKind))),
		})
	}
	return out
}

func productDetails(rng *rand.Rand, category string) []Detail {
	return []Detail{
		{Label: "DOT", Value: fmt.Sprintf("%d-%02d", between(rng, 300, 999), between(rng, 1, 99))},
		{Label: "Category", Value: category},
		{Label: "Stockpile", Value: pick(rng, stockpiles)},
		{Label: "Tax", Value: pick(rng, taxCodes)},
	}
}

func namedProducts(rng *rand.Rand) []Entity {
	named := []Entity{
		{ID: "PRD-A1", Code: "A1", Name: `3/4" Crushed Stone`, Aliases: []string{"stone", "aggregate"}, UnitPrice: 14.25},
		{ID: "PRD-S2", Code: "S2", Name: "Concrete Sand", Aliases: []string{"sand"}, UnitPrice: 12.50},
		{ID: "PRD-B3", Code: "B3", Name: "Hot Mix Asphalt", Aliases: []string{"asphalt", "mix"}, UnitPrice: 68.00},
		{ID: "PRD-F4", Code: "F4", Name: "Fill Dirt", Aliases: []string{"fill", "dirt"}, UnitPrice: 8.75},
	}
	cats := []string{"Aggregate", "Sand", "Asphalt", "Fill"}
	for i := range named {
		named[i].Details = productDetails(rng, cats[i])
	}
	return named
}

func generateProducts(rng *rand.Rand) []Entity {
	out := make([]Entity, 0, generatedPerKind)
	for i := 0; i < generatedPerKind; i++ {
		out = append(out, Entity{
			ID:        fmt.Sprintf("PRD-%04d", i+1),
			Code:      fmt.Sprintf("M%03d", i+1),
			Name:      fmt.Sprintf("Material Blend %d", i+1),
			Aliases:   []string{fmt.Sprintf("mix %d", i%9), fmt.Sprintf("grade %d", i%5)},
			Details:   productDetails(rng, pick(rng, categories)),
			UnitPrice: float64(between(rng, 800, 2500)) / 100,
		})
	}
	return out
}
