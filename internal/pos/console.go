package pos

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/csheth/weighbridge/internal/entity"
)

// Defaults for Config fields left zero.
const (
	DefaultRecentLimit = 10
	DefaultSyncDelay   = 700 * time.Millisecond
	DefaultSettleDelay = 800 * time.Millisecond
)

// Config tunes a Console.
type Config struct {
	FieldLimit     int
	PaletteLimit   int
	RecentLimit    int
	ScaleIncrement int
	SyncDelay      time.Duration
	SettleDelay    time.Duration
	Online         bool
	Scale          Reading
	Now            func() time.Time
}

func (c Config) withDefaults() Config {
	if c.RecentLimit <= 0 {
		c.RecentLimit = DefaultRecentLimit
	}
	if c.SyncDelay <= 0 {
		c.SyncDelay = DefaultSyncDelay
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Outcome reports what a key did. Schedule lists timers the runtime must
// deliver back through Expire.
type Outcome struct {
	Action   Action
	Status   string
	Err      error
	Schedule []Scheduled
	Record   *Record
}

// Snapshot is everything a view needs to draw the console.
type Snapshot struct {
	Fields      map[entity.Kind]SearchState
	OpenField   entity.Kind
	ActiveField entity.Kind
	Palette     SearchState
	Ticket      TicketSnapshot

	Online       bool
	Queue        []Record
	FlushPending bool
	History      []Record
	Recent       []Record
	QuickRepeat  []Record

	Scale    Reading
	HelpOpen bool
	Counts   map[entity.Kind]int
}

// Console owns every state machine of one scale-house session. All methods
// run on the caller's goroutine; the console is not safe for concurrent use.
type Console struct {
	cfg     Config
	index   *entity.Index
	timers  *Timers
	outbox  *Outbox
	gate    *ScaleGate
	ticket  *Ticket
	fields  *Fields
	palette *Palette

	helpOpen bool
}

// NewConsole wires a session over index with the given ledger history.
func NewConsole(index *entity.Index, history []Record, cfg Config) *Console {
	cfg = cfg.withDefaults()
	timers := NewTimers()
	outbox := NewOutbox(history, cfg.Online, cfg.SyncDelay, timers)
	ticket := NewTicket(index, outbox, NewSequence(history), cfg.Now)
	return &Console{
		cfg:     cfg,
		index:   index,
		timers:  timers,
		outbox:  outbox,
		gate:    NewScaleGate(cfg.Scale, cfg.ScaleIncrement),
		ticket:  ticket,
		fields:  NewFields(index, ticket, cfg.FieldLimit),
		palette: NewPalette(index, ticket, cfg.PaletteLimit),
	}
}

// Context reports the current focus for the dispatcher.
func (c *Console) Context() Context {
	return Context{
		Field:       c.fields.OpenKind(),
		PaletteOpen: c.palette.IsOpen(),
		HelpOpen:    c.helpOpen,
	}
}

// Typing reports whether a text input has focus.
func (c *Console) Typing() bool {
	return c.palette.IsOpen() || c.fields.OpenKind() != ""
}

// HandleKey dispatches one key and applies it to completion. ActionInput is
// returned untouched; the caller edits its text input and calls SetQuery.
func (c *Console) HandleKey(ev KeyEvent) Outcome {
	if c.Typing() {
		ev.Typing = true
	}
	a := Dispatch(ev, c.Context())
	out := Outcome{Action: a}
	switch a.Type {
	case ActionNone, ActionInput:
	case ActionOpenPalette:
		c.fields.Close()
		c.helpOpen = false
		c.palette.Open()
	case ActionClosePalette:
		c.palette.Close()
	case ActionOpenField:
		c.OpenField(a.Kind)
	case ActionCloseField:
		c.fields.Close()
	case ActionCloseHelp:
		c.helpOpen = false
	case ActionToggleHelp:
		c.helpOpen = !c.helpOpen
	case ActionMoveHighlight:
		if c.palette.IsOpen() {
			c.palette.MoveHighlight(a.Delta)
		} else {
			c.fields.MoveHighlight(a.Delta)
		}
	case ActionConfirm:
		c.confirm(&out)
	case ActionCycleField:
		c.fields.CycleNext()
	case ActionClearSelection:
		kind := c.fields.ClearSelection()
		out.Status = kind.Label() + " cleared"
	case ActionCaptureGross:
		c.capture(&out, "Gross", c.ticket.CaptureGross)
	case ActionCaptureTare:
		c.capture(&out, "Tare", c.ticket.CaptureTare)
	case ActionFinalize:
		c.finalize(&out)
	case ActionRepeatLast:
		r, err := c.ticket.RepeatLast()
		c.repeated(&out, r, err, "Repeated "+r.ID)
	case ActionRepeatProduct:
		r, err := c.ticket.RepeatProduct()
		c.repeated(&out, r, err, "Product repeated from "+r.ID)
	case ActionToggleOnline:
		c.toggleOnline(&out)
	case ActionNewTicket:
		c.ticket.Reset()
		c.OpenField(entity.KindTruck)
		out.Status = "New ticket"
	case ActionQuickRepeat:
		c.quickRepeat(&out, a.Slot)
	}
	if out.Err != nil {
		log.Printf("[console] %s: %v", a.Type, out.Err)
	}
	return out
}

// OpenField opens a field and closes the palette and help.
func (c *Console) OpenField(kind entity.Kind) {
	c.palette.Close()
	c.helpOpen = false
	c.fields.Open(kind)
}

// SetQuery feeds the focused input's text to the palette or open field.
func (c *Console) SetQuery(q string) {
	if c.palette.IsOpen() {
		c.palette.SetQuery(q)
		return
	}
	c.fields.SetQuery(q)
}

// UpdateScale replaces the live reading. An unstable reading arms the settle
// timer; a stable one cancels it.
func (c *Console) UpdateScale(r Reading) (Scheduled, bool) {
	c.gate.Update(r)
	if r.Stable {
		c.timers.Cancel(TimerScaleSettle)
		return Scheduled{}, false
	}
	if c.timers.Pending(TimerScaleSettle) {
		return Scheduled{}, false
	}
	h := c.timers.Arm(TimerScaleSettle)
	return Scheduled{Name: TimerScaleSettle, Handle: h, After: c.cfg.SettleDelay}, true
}

// Expire delivers a fired timer. It reports whether s was still live; stale
// handles are ignored.
func (c *Console) Expire(s Scheduled) bool {
	switch s.Name {
	case TimerOutboxFlush:
		_, ok := c.outbox.Flush(s.Handle)
		return ok
	default:
		return c.timers.Fire(s.Name, s.Handle)
	}
}

// Query returns the text of the focused search, empty when none is open.
func (c *Console) Query() string {
	if c.palette.IsOpen() {
		return c.palette.State().Query
	}
	if kind := c.fields.OpenKind(); kind != "" {
		return c.fields.State(kind).Query
	}
	return ""
}

// SyncPending reports whether an outbox flush is armed.
func (c *Console) SyncPending() bool {
	return c.outbox.SyncPending()
}

// Queued reports how many tickets wait in the outbox.
func (c *Console) Queued() int {
	return len(c.outbox.queue)
}

// Scale returns the live reading.
func (c *Console) Scale() Reading {
	return c.gate.Reading()
}

// Snapshot captures the console for rendering.
func (c *Console) Snapshot() Snapshot {
	snap := Snapshot{
		Fields:       make(map[entity.Kind]SearchState, len(entity.Kinds)),
		OpenField:    c.fields.OpenKind(),
		ActiveField:  c.fields.Active(),
		Palette:      c.palette.State(),
		Ticket:       c.ticket.Snapshot(),
		Online:       c.outbox.Online(),
		Queue:        c.outbox.Queue(),
		FlushPending: c.outbox.SyncPending(),
		History:      c.outbox.History(),
		Recent:       c.outbox.Recent(c.cfg.RecentLimit),
		QuickRepeat:  c.quickRepeatRecords(),
		Scale:        c.gate.Reading(),
		HelpOpen:     c.helpOpen,
		Counts:       make(map[entity.Kind]int, len(entity.Kinds)),
	}
	for _, kind := range entity.Kinds {
		snap.Fields[kind] = c.fields.State(kind)
		snap.Counts[kind] = c.index.Len(kind)
	}
	return snap
}

func (c *Console) confirm(out *Outcome) {
	if c.palette.IsOpen() {
		if cand, ok := c.palette.Confirm(); ok {
			out.Status = fmt.Sprintf("%s set to %s", cand.Kind.Label(), cand.Entity.Display())
		}
		return
	}
	kind := c.fields.OpenKind()
	if e, ok := c.fields.Confirm(); ok {
		out.Status = fmt.Sprintf("%s set to %s", kind.Label(), e.Display())
	}
}

func (c *Console) capture(out *Outcome, label string, fn func(*ScaleGate) (int, error)) {
	w, err := fn(c.gate)
	if err != nil {
		out.Err = err
		return
	}
	out.Status = fmt.Sprintf("%s captured: %d lb", label, w)
}

func (c *Console) finalize(out *Outcome) {
	online := c.outbox.Online()
	r, err := c.ticket.Finalize()
	if err != nil {
		out.Err = err
		return
	}
	out.Record = &r
	switch pending := len(c.outbox.Queue()); {
	case pending == 0:
		out.Status = fmt.Sprintf("Ticket %s recorded: %d lb net", r.ID, r.Net)
	case online:
		out.Status = fmt.Sprintf("Ticket %s queued behind sync (%d pending)", r.ID, pending)
	default:
		out.Status = fmt.Sprintf("Ticket %s queued offline (%d pending)", r.ID, pending)
	}
}

func (c *Console) repeated(out *Outcome, r Record, err error, status string) {
	if errors.Is(err, ErrNoHistory) {
		out.Err = err
		return
	}
	if err != nil {
		out.Err = err
	}
	out.Record = &r
	out.Status = status
}

func (c *Console) toggleOnline(out *Outcome) {
	s, armed := c.outbox.Toggle()
	if armed {
		out.Schedule = append(out.Schedule, s)
	}
	switch {
	case !c.outbox.Online():
		out.Status = "Offline: tickets will queue"
	case armed:
		out.Status = fmt.Sprintf("Online: syncing %d queued", len(c.outbox.Queue()))
	default:
		out.Status = "Online"
	}
}

func (c *Console) quickRepeatRecords() []Record {
	customer, ok := c.ticket.Selection(entity.KindCustomer)
	if !ok {
		return nil
	}
	return c.outbox.ForCustomer(customer.ID, QuickRepeatSlots)
}

func (c *Console) quickRepeat(out *Outcome, slot int) {
	records := c.quickRepeatRecords()
	if slot < 0 || slot >= len(records) {
		return
	}
	r := records[slot]
	if err := c.ticket.Apply(r); err != nil {
		out.Err = err
	}
	out.Record = &r
	out.Status = "Loaded " + r.ID
}
