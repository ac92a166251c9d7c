package metrics

import (
	"context"

	"github.com/osse101/PerkPoints_Go/internal/event"
	"github.com/osse101/PerkPoints_Go/internal/logger"
)

// EventMetricsCollector subscribes to host notifications and counts them
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Subscriber is anything host notifications can be observed on
type Subscriber interface {
	Subscribe(eventType event.Type, handler event.Handler)
}

// Register subscribes to all host notification types
func (e *EventMetricsCollector) Register(bus Subscriber) {
	eventTypes := []event.Type{
		event.DataReady,
		event.NewGame,
		event.PostLoadGame,
		event.PerkPointIncrease,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent records one received notification
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	HostEventsReceived.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
