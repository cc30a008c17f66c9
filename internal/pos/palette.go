package pos

import (
	"log"

	"github.com/csheth/weighbridge/internal/entity"
)

// DefaultPaletteLimit caps the results shown in the command palette.
const DefaultPaletteLimit = 40

// Palette is the global jump box over every kind at once.
type Palette struct {
	ticket *Ticket
	search *Search
}

// NewPalette indexes all kinds. Candidates are scored with the kind name
// prepended so typing "product" narrows to products.
func NewPalette(index *entity.Index, ticket *Ticket, limit int) *Palette {
	if limit <= 0 {
		limit = DefaultPaletteLimit
	}
	var candidates []Candidate
	for _, kind := range entity.Kinds {
		candidates = append(candidates, kindCandidates(index, kind)...)
	}
	haystack := func(c Candidate) string { return entity.PaletteHaystack(c.Kind, c.Entity) }
	return &Palette{
		ticket: ticket,
		search: NewSearch(candidates, haystack, limit),
	}
}

// Open shows the palette with an empty query.
func (p *Palette) Open() { p.search.Open() }

// Close hides the palette.
func (p *Palette) Close() { p.search.Close() }

// IsOpen reports whether the palette is showing.
func (p *Palette) IsOpen() bool { return p.search.IsOpen() }

// SetQuery re-ranks the palette.
func (p *Palette) SetQuery(q string) { p.search.SetQuery(q) }

// MoveHighlight moves the highlight, clamped.
func (p *Palette) MoveHighlight(delta int) { p.search.MoveHighlight(delta) }

// Confirm writes the highlighted candidate straight into the ticket and
// closes the palette.
func (p *Palette) Confirm() (Candidate, bool) {
	c, ok := p.search.Highlighted()
	if !ok {
		return Candidate{}, false
	}
	if err := p.ticket.Select(c.Kind, c.Entity.ID); err != nil {
		log.Printf("[palette] %v", err)
		return Candidate{}, false
	}
	p.search.Close()
	return c, true
}

// State returns the observable state.
func (p *Palette) State() SearchState { return p.search.State() }
