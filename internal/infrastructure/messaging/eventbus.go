// Package messaging implements the in-process event bus. Publishing is
// best-effort and synchronous; there are no delivery guarantees and no
// persistence.
package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
	"github.com/pulseboard/pulseboard-backend/pkg/logger"
)

// EventBus is a simple in-memory publisher. Suitable for single-instance
// deployments; implements shared.EventPublisher.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[shared.EventType][]shared.EventHandler
	log      *logger.Logger
}

// NewEventBus creates an empty bus.
func NewEventBus(log *logger.Logger) *EventBus {
	if log == nil {
		log = logger.Default()
	}
	return &EventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		log:      log,
	}
}

// Subscribe registers a handler for an event type.
func (b *EventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Publish delivers the event to every subscribed handler. Handler errors are
// logged and swallowed: one failing subscriber must not affect the others or
// the publisher.
func (b *EventBus) Publish(ctx context.Context, event shared.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			b.log.Warn("event handler failed",
				logger.String("event", string(event.EventType())),
				logger.String("aggregate", event.AggregateID()),
				logger.Err(err),
			)
		}
	}
	return nil
}

// LogEvents subscribes a logging handler to the given event types. The
// default observer wired at process start.
func LogEvents(bus *EventBus, log *logger.Logger, types ...shared.EventType) {
	handler := func(_ context.Context, event shared.Event) error {
		log.Info("domain event",
			logger.String("event", string(event.EventType())),
			logger.String("aggregate", event.AggregateID()),
		)
		return nil
	}
	for _, t := range types {
		_ = bus.Subscribe(t, handler)
	}
}
