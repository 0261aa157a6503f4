package entity

import "go-castle-defense/internal/types"

// Store keeps components keyed by entity ID and iterates them in insertion
// order, so two runs with the same inputs visit entities identically.
type Store[T any] struct {
	ids   []types.EntityID
	items map[types.EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[types.EntityID]*T)}
}

// Add inserts c under id. Adding an existing id replaces its component in place.
func (s *Store[T]) Add(id types.EntityID, c *T) {
	if _, exists := s.items[id]; !exists {
		s.ids = append(s.ids, id)
	}
	s.items[id] = c
}

// Get looks up a component. Removed or unknown ids resolve to (nil, false).
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	c, ok := s.items[id]
	return c, ok
}

func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Each visits every component in insertion order. Components added during
// the walk are not visited.
func (s *Store[T]) Each(fn func(id types.EntityID, c *T)) {
	ids := s.ids[:len(s.ids):len(s.ids)]
	for _, id := range ids {
		if c, ok := s.items[id]; ok {
			fn(id, c)
		}
	}
}

// RemoveIf deletes every component for which pred returns true, keeping
// the order of the rest. It returns the number removed.
func (s *Store[T]) RemoveIf(pred func(id types.EntityID, c *T) bool) int {
	kept := s.ids[:0]
	removed := 0
	for _, id := range s.ids {
		if pred(id, s.items[id]) {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
	return removed
}

// Clear removes everything.
func (s *Store[T]) Clear() {
	s.ids = nil
	s.items = make(map[types.EntityID]*T)
}
