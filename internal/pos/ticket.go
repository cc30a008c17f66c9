package pos

import (
	"fmt"
	"log"
	"time"

	"github.com/csheth/weighbridge/internal/entity"
)

const poundsPerTon = 2000

// TicketSnapshot is a read-only view of the ticket in progress.
type TicketSnapshot struct {
	Truck    *entity.Entity
	Customer *entity.Entity
	Order    *entity.Entity
	Product  *entity.Entity

	Gross    int
	Tare     int
	Net      int
	HasGross bool
	HasTare  bool
	HasNet   bool

	CanFinalize bool

	// ExpectedTare is the selected truck's last recorded tare.
	ExpectedTare int
	// UnitPrice is the selected product's price per ton.
	UnitPrice float64
	// Amount is the net tonnage priced at UnitPrice.
	Amount float64
}

// Selection returns the snapshot's selection for kind.
func (s TicketSnapshot) Selection(kind entity.Kind) *entity.Entity {
	switch kind {
	case entity.KindTruck:
		return s.Truck
	case entity.KindCustomer:
		return s.Customer
	case entity.KindOrder:
		return s.Order
	case entity.KindProduct:
		return s.Product
	}
	return nil
}

// Ticket is the weigh ticket being built: four selections plus captured
// gross and tare.
type Ticket struct {
	index  *entity.Index
	outbox *Outbox
	ids    *Sequence
	now    func() time.Time

	selected map[entity.Kind]entity.Entity

	gross, tare       int
	hasGross, hasTare bool
}

// NewTicket returns an empty ticket that files finalized records into
// outbox.
func NewTicket(index *entity.Index, outbox *Outbox, ids *Sequence, now func() time.Time) *Ticket {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = NewSequence(outbox.History(), outbox.Queue())
	}
	return &Ticket{
		index:    index,
		outbox:   outbox,
		ids:      ids,
		now:      now,
		selected: map[entity.Kind]entity.Entity{},
	}
}

// Select sets the selection for kind by id. An id missing from the index
// clears the selection and reports ErrUnknownID.
func (t *Ticket) Select(kind entity.Kind, id string) error {
	e, ok := t.index.Lookup(kind, id)
	if !ok {
		delete(t.selected, kind)
		return fmt.Errorf("%s %q: %w", kind, id, ErrUnknownID)
	}
	t.selected[kind] = e
	return nil
}

// Clear removes the selection for kind.
func (t *Ticket) Clear(kind entity.Kind) {
	delete(t.selected, kind)
}

// Selection returns the current selection for kind.
func (t *Ticket) Selection(kind entity.Kind) (entity.Entity, bool) {
	e, ok := t.selected[kind]
	return e, ok
}

// CaptureGross records the live scale weight as gross.
func (t *Ticket) CaptureGross(gate *ScaleGate) (int, error) {
	w, err := gate.Capture()
	if err != nil {
		return 0, err
	}
	t.gross, t.hasGross = w, true
	return w, nil
}

// CaptureTare records the live scale weight as tare.
func (t *Ticket) CaptureTare(gate *ScaleGate) (int, error) {
	w, err := gate.Capture()
	if err != nil {
		return 0, err
	}
	t.tare, t.hasTare = w, true
	return w, nil
}

// Net is gross minus tare, floored at zero. It is only defined once both
// weights are captured.
func (t *Ticket) Net() (int, bool) {
	if !t.hasGross || !t.hasTare {
		return 0, false
	}
	return max(0, t.gross-t.tare), true
}

// CanFinalize reports whether all four selections are made and the net
// weight is positive.
func (t *Ticket) CanFinalize() bool {
	for _, kind := range entity.Kinds {
		if _, ok := t.selected[kind]; !ok {
			return false
		}
	}
	net, ok := t.Net()
	return ok && net > 0
}

// Finalize issues the ticket. The record goes to the outbox, the weights are
// cleared, and the selections stay for the next load of the same truck.
func (t *Ticket) Finalize() (Record, error) {
	if !t.CanFinalize() {
		return Record{}, ErrIncompleteTicket
	}
	net, _ := t.Net()
	record := Record{
		ID:         t.ids.Next(),
		TruckID:    t.selected[entity.KindTruck].ID,
		CustomerID: t.selected[entity.KindCustomer].ID,
		OrderID:    t.selected[entity.KindOrder].ID,
		ProductID:  t.selected[entity.KindProduct].ID,
		Gross:      t.gross,
		Tare:       t.tare,
		Net:        net,
		Timestamp:  t.now(),
	}
	t.outbox.Submit(record)
	t.clearWeights()
	log.Printf("[ticket] finalized %s net=%d", record.ID, record.Net)
	return record, nil
}

// RepeatLast copies every selection from the most recent record and clears
// the weights.
func (t *Ticket) RepeatLast() (Record, error) {
	last, ok := t.outbox.Latest()
	if !ok {
		return Record{}, ErrNoHistory
	}
	return last, t.Apply(last)
}

// RepeatProduct copies only the product from the most recent record.
func (t *Ticket) RepeatProduct() (Record, error) {
	last, ok := t.outbox.Latest()
	if !ok {
		return Record{}, ErrNoHistory
	}
	return last, t.Select(entity.KindProduct, last.ProductID)
}

// Apply loads the four selections of r and clears the weights. Ids that no
// longer resolve leave that selection empty; the first such failure is
// returned.
func (t *Ticket) Apply(r Record) error {
	var firstErr error
	ids := map[entity.Kind]string{
		entity.KindTruck:    r.TruckID,
		entity.KindCustomer: r.CustomerID,
		entity.KindOrder:    r.OrderID,
		entity.KindProduct:  r.ProductID,
	}
	for _, kind := range entity.Kinds {
		if err := t.Select(kind, ids[kind]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	t.clearWeights()
	return firstErr
}

// Reset starts a new ticket from scratch.
func (t *Ticket) Reset() {
	t.selected = map[entity.Kind]entity.Entity{}
	t.clearWeights()
}

func (t *Ticket) clearWeights() {
	t.gross, t.tare = 0, 0
	t.hasGross, t.hasTare = false, false
}

// Snapshot captures the ticket and its derived values.
func (t *Ticket) Snapshot() TicketSnapshot {
	snap := TicketSnapshot{
		Gross:       t.gross,
		Tare:        t.tare,
		HasGross:    t.hasGross,
		HasTare:     t.hasTare,
		CanFinalize: t.CanFinalize(),
	}
	snap.Net, snap.HasNet = t.Net()
	ref := func(kind entity.Kind) *entity.Entity {
		e, ok := t.selected[kind]
		if !ok {
			return nil
		}
		return &e
	}
	snap.Truck = ref(entity.KindTruck)
	snap.Customer = ref(entity.KindCustomer)
	snap.Order = ref(entity.KindOrder)
	snap.Product = ref(entity.KindProduct)
	if snap.Truck != nil {
		snap.ExpectedTare = snap.Truck.TareWeight
	}
	if snap.Product != nil {
		snap.UnitPrice = snap.Product.UnitPrice
		if snap.HasNet {
			snap.Amount = float64(snap.Net) / poundsPerTon * snap.UnitPrice
		}
	}
	return snap
}
