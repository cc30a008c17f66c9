package pos

import (
	"testing"

	"github.com/csheth/weighbridge/internal/entity"
)

func newTestFields(t *testing.T) (*Fields, *Ticket) {
	t.Helper()
	ticket, _ := newTestTicket(t, true)
	return NewFields(testIndex(), ticket, DefaultFieldLimit), ticket
}

func TestFieldsOpenListsEverything(t *testing.T) {
	f, _ := newTestFields(t)
	f.Open(entity.KindTruck)
	st := f.State(entity.KindTruck)
	if !st.Open || len(st.Results) != 2 || st.Highlighted != 0 {
		t.Fatalf("unexpected state after open: %+v", st)
	}
}

func TestFieldsAtMostOneOpen(t *testing.T) {
	f, _ := newTestFields(t)
	f.Open(entity.KindTruck)
	f.SetQuery("volvo")
	f.Open(entity.KindProduct)
	if f.State(entity.KindTruck).Open {
		t.Fatal("truck field should close when product opens")
	}
	if q := f.State(entity.KindTruck).Query; q != "" {
		t.Fatalf("closing should reset the query, got %q", q)
	}
	if f.OpenKind() != entity.KindProduct {
		t.Fatalf("OpenKind() = %q", f.OpenKind())
	}
}

func TestFieldsConfirmSelects(t *testing.T) {
	f, ticket := newTestFields(t)
	f.Open(entity.KindTruck)
	f.SetQuery("volvo")
	e, ok := f.Confirm()
	if !ok || e.ID != "TRK-2" {
		t.Fatalf("Confirm() = %v, %v", e.ID, ok)
	}
	if f.OpenKind() != "" {
		t.Fatal("confirm should close the field")
	}
	if sel, ok := ticket.Selection(entity.KindTruck); !ok || sel.ID != "TRK-2" {
		t.Fatalf("selection = %+v", sel)
	}
	if ticket.Snapshot().ExpectedTare != 31940 {
		t.Fatal("derived tare should follow the new selection")
	}
}

func TestFieldsConfirmEmptyIsNoop(t *testing.T) {
	f, ticket := newTestFields(t)
	f.Open(entity.KindCustomer)
	f.SetQuery("zzzz")
	if _, ok := f.Confirm(); ok {
		t.Fatal("confirm with no results should do nothing")
	}
	if f.OpenKind() != entity.KindCustomer {
		t.Fatal("field should stay open")
	}
	if _, ok := ticket.Selection(entity.KindCustomer); ok {
		t.Fatal("nothing should be selected")
	}
}

func TestFieldsMoveHighlightClamps(t *testing.T) {
	f, _ := newTestFields(t)
	f.Open(entity.KindTruck)
	f.MoveHighlight(-1)
	if got := f.State(entity.KindTruck).Highlighted; got != 0 {
		t.Fatalf("highlight = %d want 0", got)
	}
	f.MoveHighlight(5)
	if got := f.State(entity.KindTruck).Highlighted; got != 1 {
		t.Fatalf("highlight = %d want 1", got)
	}
	f.SetQuery("kenworth")
	if got := f.State(entity.KindTruck).Highlighted; got != 0 {
		t.Fatalf("query change should reset highlight, got %d", got)
	}

	f.SetQuery("nothing matches")
	f.MoveHighlight(1)
	f.MoveHighlight(-1)
	if got := f.State(entity.KindTruck).Highlighted; got != 0 {
		t.Fatalf("empty results highlight = %d want 0", got)
	}
}

func TestFieldsTabCycle(t *testing.T) {
	f, _ := newTestFields(t)
	if got := f.CycleNext(); got != "" {
		t.Fatalf("tab with nothing open should do nothing, got %q", got)
	}
	f.Open(entity.KindTruck)
	want := []entity.Kind{entity.KindCustomer, entity.KindOrder, entity.KindProduct, entity.KindTruck}
	for _, kind := range want {
		if got := f.CycleNext(); got != kind {
			t.Fatalf("CycleNext() = %q want %q", got, kind)
		}
		if f.OpenKind() != kind {
			t.Fatalf("open field = %q want %q", f.OpenKind(), kind)
		}
	}
}

func TestFieldsClearSelectionWhileClosed(t *testing.T) {
	f, ticket := newTestFields(t)
	f.Open(entity.KindOrder)
	if _, ok := f.Confirm(); !ok {
		t.Fatal("confirm should select the only order")
	}
	if got := f.ClearSelection(); got != entity.KindOrder {
		t.Fatalf("cleared %q want order", got)
	}
	if _, ok := ticket.Selection(entity.KindOrder); ok {
		t.Fatal("order should be cleared")
	}
}

func TestFieldsSetQueryWhileClosed(t *testing.T) {
	f, _ := newTestFields(t)
	f.SetQuery("volvo")
	for _, kind := range entity.Kinds {
		if st := f.State(kind); st.Open || st.Query != "" || len(st.Results) != 0 {
			t.Fatalf("%s changed while closed: %+v", kind, st)
		}
	}
}

func TestPaletteConfirmSelectsAcrossKinds(t *testing.T) {
	ticket, _ := newTestTicket(t, true)
	p := NewPalette(testIndex(), ticket, DefaultPaletteLimit)
	p.Open()
	if got := len(p.State().Results); got != 7 {
		t.Fatalf("palette lists %d candidates want 7", got)
	}
	p.SetQuery("product")
	c, ok := p.State().Current()
	if !ok || c.Kind != entity.KindProduct {
		t.Fatalf("kind name should rank products first, got %+v", c)
	}
	p.MoveHighlight(1)
	p.MoveHighlight(100)
	st := p.State()
	if st.Highlighted != len(st.Results)-1 {
		t.Fatalf("palette highlight should clamp, got %d of %d", st.Highlighted, len(st.Results))
	}

	p.SetQuery("acme")
	picked, ok := p.Confirm()
	if !ok || picked.Entity.ID != "CUST-1" {
		t.Fatalf("Confirm() = %+v, %v", picked, ok)
	}
	if p.IsOpen() {
		t.Fatal("palette should close after confirm")
	}
	if sel, ok := ticket.Selection(entity.KindCustomer); !ok || sel.ID != "CUST-1" {
		t.Fatal("palette should set the customer")
	}
}
