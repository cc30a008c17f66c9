package entity

// Index is a read-only lookup over the four collections.
type Index struct {
	lists map[Kind][]Entity
	byID  map[Kind]map[string]int
}

// NewIndex copies the collections and indexes them by id. Later duplicates of
// an id are ignored so lookups stay stable.
func NewIndex(trucks, customers, orders, products []Entity) *Index {
	idx := &Index{
		lists: map[Kind][]Entity{},
		byID:  map[Kind]map[string]int{},
	}
	for kind, list := range map[Kind][]Entity{
		KindTruck:    trucks,
		KindCustomer: customers,
		KindOrder:    orders,
		KindProduct:  products,
	} {
		kept := make([]Entity, 0, len(list))
		ids := make(map[string]int, len(list))
		for _, e := range list {
			if _, dup := ids[e.ID]; dup {
				continue
			}
			ids[e.ID] = len(kept)
			kept = append(kept, e)
		}
		idx.lists[kind] = kept
		idx.byID[kind] = ids
	}
	return idx
}

// Lookup resolves an id within a kind.
func (idx *Index) Lookup(kind Kind, id string) (Entity, bool) {
	pos, ok := idx.byID[kind][id]
	if !ok {
		return Entity{}, false
	}
	return idx.lists[kind][pos], true
}

// All returns the collection in seed order. Callers must not modify it.
func (idx *Index) All(kind Kind) []Entity {
	return idx.lists[kind]
}

// Len reports the collection size.
func (idx *Index) Len(kind Kind) int {
	return len(idx.lists[kind])
}
