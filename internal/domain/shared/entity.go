package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base for every domain entity: an opaque unique identity
// generated at creation, plus creation and mutation timestamps. Identity is
// stable for the lifetime of the entity; updates never change it.
type Entity struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntity creates a base entity with a fresh uuid and current timestamps.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the entity identifier. It exists so that the generic
// store can address any entity kind uniformly.
func (e Entity) EntityID() string {
	return e.ID
}

// Touch marks the entity as mutated.
func (e *Entity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// Identifiable is the constraint satisfied by every entity stored in a
// repository.
type Identifiable interface {
	EntityID() string
}
