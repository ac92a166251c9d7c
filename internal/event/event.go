package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of a host notification
type Type string

// Event represents a notification delivered by the host application
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Host lifecycle messages
const (
	DataReady    Type = "host.data_ready"
	NewGame      Type = "host.new_game"
	PostLoadGame Type = "host.post_load_game"
)

// Gameplay events
const (
	PerkPointIncrease Type = "player.perk_point_increase"
)

// PerkPointIncreasePayloadV1 carries the host's post-increment cumulative perk count
type PerkPointIncreasePayloadV1 struct {
	PerkCount int8 `json:"perk_count"`
}

// NewPerkPointIncreaseEvent creates a perk point increase event
func NewPerkPointIncreaseEvent(perkCount int8) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PerkPointIncrease,
		Payload: PerkPointIncreasePayloadV1{PerkCount: perkCount},
	}
}

// NewLifecycleEvent creates a payload-less host lifecycle message
func NewLifecycleEvent(t Type) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publisher's goroutine in registration order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// HasSubscribers reports whether anything listens for eventType
func (b *MemoryBus) HasSubscribers(eventType Type) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType]) > 0
}
