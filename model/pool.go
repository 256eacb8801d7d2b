package model

// Pool is the ordered, mutable set of pending reservations. Entries are
// unique by identity, never by name. The pool only ever shrinks: one entry
// per grant plus zero or more per prune pass.
type Pool struct {
	items []*Reservation
}

// NewPool builds a pool over the supplied reservations.
func NewPool(reservations ...*Reservation) *Pool {
	items := make([]*Reservation, len(reservations))
	copy(items, reservations)
	return &Pool{items: items}
}

// Size returns the number of pending reservations.
func (p *Pool) Size() int {
	return len(p.items)
}

// IsEmpty returns true once every reservation has been granted or pruned.
func (p *Pool) IsEmpty() bool {
	return len(p.items) == 0
}

// At returns the pending reservation at position i.
func (p *Pool) At(i int) *Reservation {
	return p.items[i]
}

// Remove takes the reservation at position i out of the pool, preserving the
// order of the remaining entries.
func (p *Pool) Remove(i int) *Reservation {
	removed := p.items[i]
	p.items = append(p.items[:i], p.items[i+1:]...)
	return removed
}

// Items returns a snapshot of the pending reservations so callers can scan
// while mutating the pool.
func (p *Pool) Items() []*Reservation {
	snapshot := make([]*Reservation, len(p.items))
	copy(snapshot, p.items)
	return snapshot
}

// Discard removes the listed reservations by identity and returns how many
// were actually present.
func (p *Pool) Discard(unwanted []*Reservation) int {
	if len(unwanted) == 0 {
		return 0
	}
	drop := make(map[*Reservation]bool, len(unwanted))
	for _, candidate := range unwanted {
		drop[candidate] = true
	}
	kept := p.items[:0]
	removed := 0
	for _, item := range p.items {
		if drop[item] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	p.items = kept
	return removed
}
