package pos

import (
	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/fuzzy"
)

// Candidate is one search result: an entity tagged with its kind.
type Candidate struct {
	Kind   entity.Kind
	Entity entity.Entity
}

// SearchState is the observable state of a search surface.
type SearchState struct {
	Query       string
	Open        bool
	Results     []Candidate
	Highlighted int
}

// Current returns the highlighted candidate.
func (s SearchState) Current() (Candidate, bool) {
	if len(s.Results) == 0 {
		return Candidate{}, false
	}
	return s.Results[s.Highlighted], true
}

// Search is a query box over a fixed candidate list. Fields and the palette
// are both a Search with different candidates, haystacks and limits.
type Search struct {
	candidates []Candidate
	haystacks  []string
	limit      int

	state SearchState
}

// NewSearch precomputes the haystack of every candidate.
func NewSearch(candidates []Candidate, haystack func(Candidate) string, limit int) *Search {
	s := &Search{
		candidates: candidates,
		haystacks:  make([]string, len(candidates)),
		limit:      limit,
	}
	for i, c := range candidates {
		s.haystacks[i] = haystack(c)
	}
	return s
}

// Open shows the search with an empty query.
func (s *Search) Open() {
	s.state.Open = true
	s.setQuery("")
}

// Close hides the search and forgets the query.
func (s *Search) Close() {
	s.state = SearchState{}
}

// IsOpen reports whether the search is showing.
func (s *Search) IsOpen() bool {
	return s.state.Open
}

// SetQuery re-ranks the candidates. The highlight returns to the top. A
// closed search ignores input.
func (s *Search) SetQuery(q string) {
	if !s.state.Open {
		return
	}
	s.setQuery(q)
}

func (s *Search) setQuery(q string) {
	idx := make([]int, len(s.candidates))
	for i := range idx {
		idx[i] = i
	}
	ranked := fuzzy.Rank(q, idx, func(i int) string { return s.haystacks[i] }, s.limit)
	results := make([]Candidate, len(ranked))
	for i, n := range ranked {
		results[i] = s.candidates[n]
	}
	s.state.Query = q
	s.state.Results = results
	s.state.Highlighted = 0
}

// MoveHighlight shifts the highlight by delta, clamped to the result list.
func (s *Search) MoveHighlight(delta int) {
	n := len(s.state.Results)
	if n == 0 {
		s.state.Highlighted = 0
		return
	}
	s.state.Highlighted = min(max(s.state.Highlighted+delta, 0), n-1)
}

// Highlighted returns the highlighted candidate, if any.
func (s *Search) Highlighted() (Candidate, bool) {
	return s.state.Current()
}

// State returns a copy of the observable state.
func (s *Search) State() SearchState {
	st := s.state
	st.Results = append([]Candidate(nil), s.state.Results...)
	return st
}

func kindCandidates(index *entity.Index, kind entity.Kind) []Candidate {
	all := index.All(kind)
	out := make([]Candidate, len(all))
	for i, e := range all {
		out[i] = Candidate{Kind: kind, Entity: e}
	}
	return out
}
