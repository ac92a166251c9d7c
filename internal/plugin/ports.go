package plugin

import (
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/event"
	"github.com/osse101/PerkPoints_Go/internal/serialization"
)

// LoadInterface is what the host hands the plugin at load time
type LoadInterface interface {
	IsEditor() bool
	RuntimeVersion() string
	Serialization() serialization.Registrar
	Messaging() MessagingInterface

	// PlayerCharacter returns nil before a game is running
	PlayerCharacter() domain.Player

	// PerkPointEventSource returns nil when the host exposes no such source
	PerkPointEventSource() EventSource
}

// MessagingInterface delivers host lifecycle messages (DataReady, NewGame, PostLoadGame)
type MessagingInterface interface {
	RegisterListener(handler event.Handler)
}

// EventSource accepts sinks for perk point increase events
type EventSource interface {
	RegisterSink(handler event.Handler)
}
