package pos

import (
	"testing"
	"time"

	"github.com/csheth/weighbridge/internal/entity"
)

var fixedNow = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

func testIndex() *entity.Index {
	return entity.NewIndex(
		[]entity.Entity{
			{ID: "TRK-1", Code: "1024", Name: "Kenworth T880", TareWeight: 29880},
			{ID: "TRK-2", Code: "2021", Name: "Volvo VNL", TareWeight: 31940},
		},
		[]entity.Entity{
			{ID: "CUST-1", Code: "ACME", Name: "Acme Paving"},
			{ID: "CUST-2", Code: "BETA", Name: "Beta Builders"},
		},
		[]entity.Entity{
			{ID: "ORD-1", Code: "4401", Name: "Main St Resurface"},
		},
		[]entity.Entity{
			{ID: "PRD-1", Code: "A1", Name: "Crushed Stone", UnitPrice: 12.5},
			{ID: "PRD-2", Code: "S2", Name: "Washed Sand", UnitPrice: 9},
		},
	)
}

func stableGate(weight int) *ScaleGate {
	return NewScaleGate(Reading{Weight: weight, Stable: true}, DefaultIncrement)
}

func newTestTicket(t *testing.T, online bool) (*Ticket, *Outbox) {
	t.Helper()
	outbox := NewOutbox(nil, online, time.Second, NewTimers())
	ticket := NewTicket(testIndex(), outbox, NewSequence(), func() time.Time { return fixedNow })
	return ticket, outbox
}

func selectAll(t *testing.T, ticket *Ticket) {
	t.Helper()
	for kind, id := range map[entity.Kind]string{
		entity.KindTruck:    "TRK-1",
		entity.KindCustomer: "CUST-1",
		entity.KindOrder:    "ORD-1",
		entity.KindProduct:  "PRD-1",
	} {
		if err := ticket.Select(kind, id); err != nil {
			t.Fatalf("Select(%s, %s): %v", kind, id, err)
		}
	}
}

func weigh(t *testing.T, ticket *Ticket, gross, tare int) {
	t.Helper()
	if _, err := ticket.CaptureGross(stableGate(gross)); err != nil {
		t.Fatalf("CaptureGross: %v", err)
	}
	if _, err := ticket.CaptureTare(stableGate(tare)); err != nil {
		t.Fatalf("CaptureTare: %v", err)
	}
}

func newTestConsole(t *testing.T, history []Record) *Console {
	t.Helper()
	return NewConsole(testIndex(), history, Config{
		Online:    true,
		SyncDelay: time.Second,
		Scale:     Reading{Weight: 73340, Stable: true},
		Now:       func() time.Time { return fixedNow },
	})
}
