// Package memory implements the in-memory persistence layer. It is the
// reference implementation of the repository contract: any durable store must
// honor the same semantics.
package memory

import (
	"context"
	"sync"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERIC STORE
// ══════════════════════════════════════════════════════════════════════════════

// Store is a kind-parametric in-memory collection of entities. It provides
// the four CRUD operations with identity lookup; per-kind repositories layer
// their query surface on top of it.
//
// The store keeps entities in insertion order and guards every operation with
// a single RWMutex, so each individual CRUD call is atomic: update and delete
// observe "not found if absent at the time of the operation" even under
// concurrent deletion. It performs no referential integrity checks and no
// multi-step transactions.
type Store[E shared.Identifiable] struct {
	mu     sync.RWMutex
	domain string
	items  []E
}

// NewStore creates an empty store. The domain name is used in error context
// only.
func NewStore[E shared.Identifiable](domain string) *Store[E] {
	return &Store[E]{domain: domain}
}

// Insert appends the entity. IDs are caller-generated and assumed unique;
// no uniqueness check is performed here.
func (s *Store[E]) Insert(_ context.Context, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// FindByID returns the entity with a matching id, or the zero value when
// absent. Absence is never an error; the caller decides whether it is.
func (s *Store[E]) FindByID(_ context.Context, id string) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.EntityID() == id {
			return e, nil
		}
	}
	var zero E
	return zero, nil
}

// FindMany returns all stored entities in insertion order. The returned slice
// is a snapshot; mutating it does not affect the store.
func (s *Store[E]) FindMany(_ context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Update locates the stored entity by the argument's id and replaces it with
// the argument, which is expected to be a mutated copy of a previously
// fetched instance. Identity never changes. Returns shared.ErrNotFound when
// no entity with that id exists.
func (s *Store[E]) Update(_ context.Context, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, stored := range s.items {
		if stored.EntityID() == e.EntityID() {
			s.items[i] = e
			return e, nil
		}
	}
	var zero E
	return zero, shared.NotFound(s.domain, "Update", "entity with id %s not found", e.EntityID())
}

// Delete removes the entity with the given id. Returns shared.ErrNotFound
// when no entity with that id exists. Removal does not cascade.
func (s *Store[E]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, stored := range s.items {
		if stored.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return shared.NotFound(s.domain, "Delete", "entity with id %s not found", id)
}

// filter returns the entities matching the predicate, preserving insertion
// order.
func (s *Store[E]) filter(pred func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []E
	for _, e := range s.items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// count returns how many entities match the predicate.
func (s *Store[E]) count(pred func(E) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.items {
		if pred(e) {
			n++
		}
	}
	return n
}

// first returns the first entity matching the predicate, or the zero value.
func (s *Store[E]) first(pred func(E) bool) E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if pred(e) {
			return e
		}
	}
	var zero E
	return zero
}
