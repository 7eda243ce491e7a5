package shared

import (
	"context"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the domain.
const (
	EventPostCreated    EventType = "post.created"
	EventPostDeleted    EventType = "post.deleted"
	EventCommentAdded   EventType = "comment.added"
	EventFollowCreated  EventType = "follow.created"
	EventUserRegistered EventType = "user.registered"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}

// BaseEvent carries the fields common to all events.
type BaseEvent struct {
	Type       EventType
	Aggregate  string
	OccurredOn time.Time
}

// EventType returns the type of the event.
func (e BaseEvent) EventType() EventType { return e.Type }

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.OccurredOn }

// AggregateID returns the ID of the aggregate that produced this event.
func (e BaseEvent) AggregateID() string { return e.Aggregate }

// NewBaseEvent creates a base event stamped with the current time.
func NewBaseEvent(t EventType, aggregateID string) BaseEvent {
	return BaseEvent{Type: t, Aggregate: aggregateID, OccurredOn: time.Now().UTC()}
}

// PostCreatedEvent is published when a post is created.
type PostCreatedEvent struct {
	BaseEvent
	AuthorID string
	Title    string
}

// PostDeletedEvent is published when a post is deleted by its owner.
type PostDeletedEvent struct {
	BaseEvent
	AuthorID string
}

// CommentAddedEvent is published when a comment is added to a post.
type CommentAddedEvent struct {
	BaseEvent
	PostID   string
	AuthorID string
}

// FollowCreatedEvent is published when one user follows another.
type FollowCreatedEvent struct {
	BaseEvent
	FollowerID  string
	FollowingID string
}

// UserRegisteredEvent is published when an account is created.
type UserRegisteredEvent struct {
	BaseEvent
	Username string
}

// EventHandler processes a single event.
type EventHandler func(ctx context.Context, event Event) error

// EventPublisher publishes domain events. Publishing is best-effort: use
// cases treat a publish failure as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards all events. Useful for tests.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(context.Context, Event) error { return nil }
