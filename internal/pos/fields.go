package pos

import (
	"log"

	"github.com/csheth/weighbridge/internal/entity"
)

// DefaultFieldLimit caps the results shown under a field.
const DefaultFieldLimit = 20

// Fields coordinates the four entity fields of the ticket. At most one field
// is open at a time; confirming a result writes the ticket selection.
type Fields struct {
	ticket   *Ticket
	searches map[entity.Kind]*Search
	open     entity.Kind
	active   entity.Kind
}

// NewFields builds one search per kind over the index.
func NewFields(index *entity.Index, ticket *Ticket, limit int) *Fields {
	if limit <= 0 {
		limit = DefaultFieldLimit
	}
	f := &Fields{
		ticket:   ticket,
		searches: make(map[entity.Kind]*Search, len(entity.Kinds)),
		active:   entity.KindTruck,
	}
	haystack := func(c Candidate) string { return entity.Haystack(c.Entity) }
	for _, kind := range entity.Kinds {
		f.searches[kind] = NewSearch(kindCandidates(index, kind), haystack, limit)
	}
	return f
}

// Open shows the field for kind, closing whichever field was open.
func (f *Fields) Open(kind entity.Kind) {
	s, ok := f.searches[kind]
	if !ok {
		return
	}
	f.Close()
	s.Open()
	f.open = kind
	f.active = kind
}

// OpenKind returns the open field, or "" when all are closed.
func (f *Fields) OpenKind() entity.Kind {
	return f.open
}

// Active returns the open field, else the field opened last.
func (f *Fields) Active() entity.Kind {
	return f.active
}

// SetQuery updates the open field's query. Without an open field it is a
// no-op.
func (f *Fields) SetQuery(q string) {
	if s := f.current(); s != nil {
		s.SetQuery(q)
	}
}

// MoveHighlight moves the open field's highlight.
func (f *Fields) MoveHighlight(delta int) {
	if s := f.current(); s != nil {
		s.MoveHighlight(delta)
	}
}

// Confirm selects the highlighted result and closes the field. With no
// results the field stays open and nothing changes.
func (f *Fields) Confirm() (entity.Entity, bool) {
	s := f.current()
	if s == nil {
		return entity.Entity{}, false
	}
	c, ok := s.Highlighted()
	if !ok {
		return entity.Entity{}, false
	}
	if err := f.ticket.Select(c.Kind, c.Entity.ID); err != nil {
		log.Printf("[fields] %v", err)
		return entity.Entity{}, false
	}
	f.Close()
	return c.Entity, true
}

// Close closes the open field, if any.
func (f *Fields) Close() {
	if s := f.current(); s != nil {
		s.Close()
	}
	f.open = ""
}

// CycleNext closes the open field and opens the next one in order. With
// every field closed it does nothing and returns "".
func (f *Fields) CycleNext() entity.Kind {
	if f.open == "" {
		return ""
	}
	next := f.open.Next()
	f.Open(next)
	return next
}

// ClearSelection clears the active field's selection. It works whether or
// not the field is open.
func (f *Fields) ClearSelection() entity.Kind {
	kind := f.Active()
	f.ticket.Clear(kind)
	return kind
}

// State returns the observable state of one field.
func (f *Fields) State(kind entity.Kind) SearchState {
	s, ok := f.searches[kind]
	if !ok {
		return SearchState{}
	}
	return s.State()
}

func (f *Fields) current() *Search {
	if f.open == "" {
		return nil
	}
	return f.searches[f.open]
}
