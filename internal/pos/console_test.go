package pos

import (
	"errors"
	"strings"
	"testing"

	"github.com/csheth/weighbridge/internal/entity"
)

func press(c *Console, key string, mod bool) Outcome {
	return c.HandleKey(KeyEvent{Key: key, Mod: mod})
}

func pick(t *testing.T, c *Console, kind, query string) {
	t.Helper()
	if out := press(c, kind, true); out.Action.Type != ActionOpenField {
		t.Fatalf("Mod+%s = %s", kind, out.Action.Type)
	}
	c.SetQuery(query)
	if out := press(c, KeyEnter, false); out.Status == "" {
		t.Fatalf("confirm %q in %s selected nothing", query, kind)
	}
}

func fillTicket(t *testing.T, c *Console) {
	t.Helper()
	pick(t, c, "t", "kenworth")
	pick(t, c, "c", "acme")
	pick(t, c, "o", "4401")
	pick(t, c, "p", "stone")
}

func captureBoth(t *testing.T, c *Console, gross, tare int) {
	t.Helper()
	c.UpdateScale(Reading{Weight: gross, Stable: true})
	if out := press(c, "g", false); out.Err != nil {
		t.Fatalf("gross: %v", out.Err)
	}
	c.UpdateScale(Reading{Weight: tare, Stable: true})
	if out := press(c, "t", false); out.Err != nil {
		t.Fatalf("tare: %v", out.Err)
	}
}

func TestConsoleWeighAndFinalize(t *testing.T) {
	c := newTestConsole(t, nil)
	fillTicket(t, c)
	captureBoth(t, c, 73340, 31200)

	out := press(c, "f", false)
	if out.Err != nil || out.Record == nil {
		t.Fatalf("finalize: %+v", out)
	}
	if out.Record.Net != 42140 {
		t.Fatalf("net = %d", out.Record.Net)
	}
	snap := c.Snapshot()
	if len(snap.History) != 1 || snap.History[0].ID != out.Record.ID {
		t.Fatalf("history = %v", ids(snap.History))
	}
	if len(snap.QuickRepeat) != 1 {
		t.Fatalf("quick repeat should list the customer's load, got %d", len(snap.QuickRepeat))
	}
}

func TestConsoleHotkeysSuppressedWhileTyping(t *testing.T) {
	c := newTestConsole(t, nil)
	press(c, "t", true)
	out := press(c, "g", false)
	if out.Action.Type != ActionInput {
		t.Fatalf("g in a field = %s want input", out.Action.Type)
	}
	if c.Snapshot().Ticket.HasGross {
		t.Fatal("g must not capture while typing")
	}
	out = press(c, KeyF2, false)
	if out.Action.Type != ActionCaptureGross || out.Err != nil {
		t.Fatalf("F2 while typing = %+v", out)
	}
	if !c.Snapshot().Ticket.HasGross {
		t.Fatal("F2 should capture while typing")
	}
}

func TestConsoleUnstableCapture(t *testing.T) {
	c := newTestConsole(t, nil)
	s, armed := c.UpdateScale(Reading{Weight: 64000, Stable: false})
	if !armed || s.Name != TimerScaleSettle {
		t.Fatalf("unstable reading should arm settle, got %+v %v", s, armed)
	}
	if _, again := c.UpdateScale(Reading{Weight: 64100, Stable: false}); again {
		t.Fatal("settle already pending")
	}
	out := press(c, "g", false)
	if !errors.Is(out.Err, ErrUnstableScale) {
		t.Fatalf("err = %v", out.Err)
	}
	if c.Snapshot().Ticket.HasGross {
		t.Fatal("gross must stay unset")
	}
	if !c.Expire(s) {
		t.Fatal("live settle handle should fire")
	}
	if c.Expire(s) {
		t.Fatal("settle handle fires once")
	}
}

func TestConsoleOfflineQueueThenSync(t *testing.T) {
	c := newTestConsole(t, nil)
	fillTicket(t, c)
	if out := press(c, "o", false); c.Snapshot().Online || len(out.Schedule) != 0 {
		t.Fatalf("should be offline without schedule: %+v", out)
	}
	for i := 0; i < 3; i++ {
		captureBoth(t, c, 70000+i*100, 30000)
		if out := press(c, "f", false); out.Err != nil {
			t.Fatalf("finalize %d: %v", i, out.Err)
		}
	}
	snap := c.Snapshot()
	if len(snap.Queue) != 3 || len(snap.History) != 0 {
		t.Fatalf("queue=%d history=%d", len(snap.Queue), len(snap.History))
	}
	if !equalIDs(snap.Recent, "TX-003", "TX-002", "TX-001") {
		t.Fatalf("recent = %v", ids(snap.Recent))
	}

	out := press(c, "o", false)
	if len(out.Schedule) != 1 {
		t.Fatalf("coming online should schedule one flush, got %d", len(out.Schedule))
	}
	if !c.Snapshot().FlushPending {
		t.Fatal("flush should be pending")
	}
	if !c.Expire(out.Schedule[0]) {
		t.Fatal("flush handle should be live")
	}
	snap = c.Snapshot()
	if len(snap.Queue) != 0 || !equalIDs(snap.History, "TX-003", "TX-002", "TX-001") {
		t.Fatalf("queue=%v history=%v", ids(snap.Queue), ids(snap.History))
	}
}

func TestConsoleOfflineBeforeFlushKeepsQueue(t *testing.T) {
	c := newTestConsole(t, nil)
	fillTicket(t, c)
	press(c, "o", false)
	captureBoth(t, c, 70000, 30000)
	press(c, "f", false)

	up := press(c, "o", false)
	press(c, "o", false)
	if c.Expire(up.Schedule[0]) {
		t.Fatal("cancelled flush should be ignored")
	}
	if snap := c.Snapshot(); len(snap.Queue) != 1 || len(snap.History) != 0 {
		t.Fatalf("queue=%d history=%d", len(snap.Queue), len(snap.History))
	}
}

func TestConsoleFinalizeDuringPendingSync(t *testing.T) {
	c := newTestConsole(t, nil)
	fillTicket(t, c)
	press(c, "o", false)
	captureBoth(t, c, 70000, 30000)
	press(c, "f", false)
	up := press(c, "o", false)

	captureBoth(t, c, 71000, 30000)
	out := press(c, KeyEnter, false)
	if out.Err != nil || out.Record == nil || out.Record.ID != "TX-002" {
		t.Fatalf("enter should finalize: %+v", out)
	}
	if !strings.Contains(out.Status, "queued behind sync") {
		t.Fatalf("status = %q", out.Status)
	}
	if snap := c.Snapshot(); !equalIDs(snap.Recent, "TX-002", "TX-001") || len(snap.History) != 0 {
		t.Fatalf("recent=%v history=%v", ids(snap.Recent), ids(snap.History))
	}
	if !c.Expire(up.Schedule[0]) {
		t.Fatal("flush handle should be live")
	}
	if snap := c.Snapshot(); !equalIDs(snap.History, "TX-002", "TX-001") {
		t.Fatalf("history = %v", ids(snap.History))
	}
}

func TestConsolePaletteClosesField(t *testing.T) {
	c := newTestConsole(t, nil)
	press(c, "t", true)
	press(c, "k", true)
	ctx := c.Context()
	if !ctx.PaletteOpen || ctx.Field != "" {
		t.Fatalf("context = %+v", ctx)
	}
	c.SetQuery("volvo")
	press(c, KeyEnter, false)
	if snap := c.Snapshot(); snap.Palette.Open || snap.Ticket.Truck == nil || snap.Ticket.Truck.ID != "TRK-2" {
		t.Fatalf("palette confirm failed: %+v", snap.Ticket.Truck)
	}
}

func TestConsoleEscOrder(t *testing.T) {
	c := newTestConsole(t, nil)
	press(c, "?", false)
	press(c, "o", true)
	if ctx := c.Context(); ctx.HelpOpen || ctx.Field != entity.KindOrder {
		t.Fatalf("opening a field should replace help: %+v", ctx)
	}
	press(c, KeyEsc, false)
	if c.Context().Field != "" {
		t.Fatal("esc should close the field")
	}
	press(c, "?", false)
	if !c.Context().HelpOpen {
		t.Fatal("help should be open")
	}
	press(c, KeyEsc, false)
	if c.Context().HelpOpen {
		t.Fatal("esc should close help")
	}
}

func TestConsoleNewTicketAndQuickRepeat(t *testing.T) {
	history := []Record{
		{ID: "TX-002", TruckID: "TRK-2", CustomerID: "CUST-1", OrderID: "ORD-1", ProductID: "PRD-2"},
		{ID: "TX-001", TruckID: "TRK-1", CustomerID: "CUST-1", OrderID: "ORD-1", ProductID: "PRD-1"},
	}
	c := newTestConsole(t, history)
	pick(t, c, "c", "acme")
	if got := len(c.Snapshot().QuickRepeat); got != 2 {
		t.Fatalf("quick repeat entries = %d", got)
	}
	out := press(c, "2", false)
	if out.Err != nil || out.Record == nil || out.Record.ID != "TX-001" {
		t.Fatalf("quick repeat: %+v", out)
	}
	if truck := c.Snapshot().Ticket.Truck; truck == nil || truck.ID != "TRK-1" {
		t.Fatal("quick repeat should load the truck")
	}

	press(c, "n", false)
	snap := c.Snapshot()
	if snap.Ticket.Truck != nil || snap.Ticket.Customer != nil {
		t.Fatal("new ticket should clear selections")
	}
	if snap.OpenField != entity.KindTruck {
		t.Fatalf("new ticket should open truck, got %q", snap.OpenField)
	}

	c.fields.Close()
	fillTicket(t, c)
	captureBoth(t, c, 60000, 30000)
	if out := press(c, "f", false); out.Record == nil || out.Record.ID != "TX-003" {
		t.Fatalf("id should continue after history: %+v", out.Record)
	}
}

func TestConsoleSnapshotCounts(t *testing.T) {
	c := newTestConsole(t, nil)
	snap := c.Snapshot()
	if snap.Counts[entity.KindTruck] != 2 || snap.Counts[entity.KindOrder] != 1 {
		t.Fatalf("counts = %v", snap.Counts)
	}
	if !snap.Online || snap.Scale.Weight != 73340 {
		t.Fatalf("snapshot = %+v", snap)
	}
}
