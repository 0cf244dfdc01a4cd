// Package ledger holds the authoritative in-memory transaction collection.
//
// The store retains insertion order internally; display and aggregation
// always work on derived sorted snapshots, so insertion order carries no
// meaning beyond being the internal representation.
package ledger

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"bilancio/internal/core"
)

// SortFunc orders two transactions for a display projection.
type SortFunc func(a, b core.Transaction) bool

// ByDateDesc is the canonical display ordering: newest first. Equal dates
// keep insertion order because projections sort stably.
func ByDateDesc(a, b core.Transaction) bool {
	return a.Date.After(b.Date.Time)
}

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Add validates the fields, assigns a fresh identity and appends the new
// transaction, returning the stored record. On failure the store is left
// untouched.
func (s *Store) Add(amount core.Money, label string, date core.Date, kind core.Kind) (core.Transaction, error) {
	t := core.Transaction{
		ID:     uuid.New(),
		Date:   date,
		Label:  label,
		Amount: amount,
		Kind:   kind,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return t, nil
}

// Get returns the transaction with the given identity, if present.
func (s *Store) Get(id uuid.UUID) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// Remove deletes the transaction with the given identity and reports
// whether a removal occurred. An absent identity is a no-op, not an
// error: the caller may hold a view that raced with another removal.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveDisplayed deletes the transactions shown at the given positions of
// a sorted projection. The projection is recomputed with the same ordering
// immediately before removal so that positions resolve against the current
// snapshot, and every position is translated to an identity before anything
// is mutated. A nil less falls back to the canonical date-descending order.
// Out-of-range positions are skipped. Returns how many records were removed.
func (s *Store) RemoveDisplayed(indices []int, less SortFunc) int {
	if less == nil {
		less = ByDateDesc
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]core.Transaction, len(s.items))
	copy(view, s.items)
	sort.SliceStable(view, func(i, j int) bool { return less(view[i], view[j]) })

	doomed := make(map[uuid.UUID]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(view) {
			continue
		}
		doomed[view[idx].ID] = struct{}{}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := s.items[:0]
	removed := 0
	for _, t := range s.items {
		if _, ok := doomed[t.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.items = kept
	return removed
}

// List returns a snapshot copy in store order. Mutating the returned slice
// never affects the store.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns a snapshot sorted with less, or with the canonical
// date-descending order when less is nil. The sort is stable.
func (s *Store) Sorted(less SortFunc) []core.Transaction {
	if less == nil {
		less = ByDateDesc
	}
	out := s.List()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
