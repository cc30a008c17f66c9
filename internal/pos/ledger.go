package pos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/csheth/weighbridge/internal/entity"
)

// Record is a finalized weigh ticket. Records are never modified once
// created.
type Record struct {
	ID         string    `json:"id" yaml:"id"`
	TruckID    string    `json:"truckId" yaml:"truckId"`
	CustomerID string    `json:"customerId" yaml:"customerId"`
	OrderID    string    `json:"orderId" yaml:"orderId"`
	ProductID  string    `json:"productId" yaml:"productId"`
	Gross      int       `json:"gross" yaml:"gross"`
	Tare       int       `json:"tare" yaml:"tare"`
	Net        int       `json:"net" yaml:"net"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
}

const (
	recordIDPrefix = "TX-"
	recordIDFormat = recordIDPrefix + "%03d"
)

// Sequence hands out ticket ids in increasing order.
type Sequence struct {
	last int
}

// NewSequence starts after the highest id found in existing.
func NewSequence(existing ...[]Record) *Sequence {
	seq := &Sequence{}
	for _, records := range existing {
		for _, r := range records {
			n, err := strconv.Atoi(strings.TrimPrefix(r.ID, recordIDPrefix))
			if err == nil && n > seq.last {
				seq.last = n
			}
		}
	}
	return seq
}

// Next returns a fresh id.
func (s *Sequence) Next() string {
	s.last++
	return fmt.Sprintf(recordIDFormat, s.last)
}

// SeedHistory builds the demo ledger shown at startup, most recent first.
// Ids count up with time, so the newest record carries the highest id.
func SeedHistory(index *entity.Index, now time.Time) []Record {
	history := []Record{
		{TruckID: "TRK-2021", CustomerID: "CUST-1", OrderID: "ORD-4401", ProductID: "PRD-A1", Gross: 73340, Tare: 31200, Net: 42140, Timestamp: now.Add(-34 * time.Minute)},
		{TruckID: "TRK-1024", CustomerID: "CUST-3", OrderID: "ORD-9012", ProductID: "PRD-F4", Gross: 65980, Tare: 29880, Net: 36100, Timestamp: now.Add(-86 * time.Minute)},
		{TruckID: "TRK-8810", CustomerID: "CUST-2", OrderID: "ORD-7730", ProductID: "PRD-S2", Gross: 70220, Tare: 31940, Net: 38280, Timestamp: now.Add(-121 * time.Minute)},
	}
	pickID := func(kind entity.Kind, i int) string {
		all := index.All(kind)
		if len(all) == 0 {
			return ""
		}
		return all[i%len(all)].ID
	}
	for i := 0; i < 40; i++ {
		tare := 28000 + (i%8)*350
		gross := tare + 24000 + (i%12)*520
		history = append(history, Record{
			TruckID:    pickID(entity.KindTruck, i+4),
			CustomerID: pickID(entity.KindCustomer, i+7),
			OrderID:    pickID(entity.KindOrder, i+9),
			ProductID:  pickID(entity.KindProduct, i+11),
			Gross:      gross,
			Tare:       tare,
			Net:        gross - tare,
			Timestamp:  now.Add(-time.Duration(150+i*6) * time.Minute),
		})
	}
	for i := range history {
		history[i].ID = fmt.Sprintf(recordIDFormat, len(history)-i)
	}
	return history
}
