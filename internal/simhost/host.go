package simhost

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/event"
	"github.com/osse101/PerkPoints_Go/internal/plugin"
	"github.com/osse101/PerkPoints_Go/internal/serialization"
)

// SaveGame is what the simulated host writes to a save slot: its own
// character data plus the plugin co-save.
type SaveGame struct {
	Level     uint16 `json:"level"`
	PerkCount int8   `json:"perk_count"`
	CoSave    []byte `json:"cosave"`
}

// Option configures a Host
type Option func(*Host)

// WithEditor makes the host report an editor context
func WithEditor() Option { return func(h *Host) { h.editor = true } }

// WithRuntime sets the reported runtime version
func WithRuntime(v string) Option { return func(h *Host) { h.runtime = v } }

// WithoutEventSource hides the perk point event source
func WithoutEventSource() Option { return func(h *Host) { h.perkSource = false } }

// WithoutPlayer starts the host with no player character
func WithoutPlayer() Option { return func(h *Host) { h.player = nil } }

// Host is an in-memory stand-in for the game: one player, a perk point event
// source, lifecycle messaging and a save channel.
type Host struct {
	editor     bool
	runtime    string
	player     *Player
	perkSource bool

	perkEvents *event.MemoryBus
	lifecycle  *event.MemoryBus

	uniqueID uint32
	onSave   serialization.Callback
	onLoad   serialization.Callback
	onRevert serialization.Callback
}

// New creates a host at runtime 1.10.984 with a fresh player
func New(opts ...Option) *Host {
	h := &Host{
		runtime:    "1.10.984",
		player:     NewPlayer(),
		perkSource: true,
		perkEvents: event.NewMemoryBus(),
		lifecycle:  event.NewMemoryBus(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ---- plugin.LoadInterface ----

func (h *Host) IsEditor() bool         { return h.editor }
func (h *Host) RuntimeVersion() string { return h.runtime }

func (h *Host) Serialization() serialization.Registrar { return h }
func (h *Host) Messaging() plugin.MessagingInterface   { return lifecycleListener{h.lifecycle} }

func (h *Host) PlayerCharacter() domain.Player {
	if h.player == nil {
		return nil
	}
	return h.player
}

func (h *Host) PerkPointEventSource() plugin.EventSource {
	if !h.perkSource {
		return nil
	}
	return perkEventSource{h.perkEvents}
}

// ---- serialization.Registrar ----

func (h *Host) SetUniqueID(id uint32)                       { h.uniqueID = id }
func (h *Host) SetSaveCallback(cb serialization.Callback)   { h.onSave = cb }
func (h *Host) SetLoadCallback(cb serialization.Callback)   { h.onLoad = cb }
func (h *Host) SetRevertCallback(cb serialization.Callback) { h.onRevert = cb }

// UniqueID returns the id the plugin registered
func (h *Host) UniqueID() uint32 { return h.uniqueID }

type lifecycleListener struct{ bus *event.MemoryBus }

func (l lifecycleListener) RegisterListener(handler event.Handler) {
	for _, t := range []event.Type{event.DataReady, event.NewGame, event.PostLoadGame} {
		l.bus.Subscribe(t, handler)
	}
}

type perkEventSource struct{ bus *event.MemoryBus }

func (s perkEventSource) RegisterSink(handler event.Handler) {
	s.bus.Subscribe(event.PerkPointIncrease, handler)
}

// Subscribe lets observers (metrics, tests) watch host notifications
func (h *Host) Subscribe(t event.Type, handler event.Handler) {
	if t == event.PerkPointIncrease {
		h.perkEvents.Subscribe(t, handler)
		return
	}
	h.lifecycle.Subscribe(t, handler)
}

// ---- game driver ----

var errNoPlayer = errors.New("simhost: no player character")

// ErrLevelUpOutOfRange is returned when a level-up would overflow the
// character's level or its int8 perk counter
var ErrLevelUpOutOfRange = errors.New("simhost: level-up exceeds counter range")

// Player returns the live character, nil if there is none
func (h *Host) Player() *Player { return h.player }

// DataReady announces that game data finished loading
func (h *Host) DataReady(ctx context.Context) error {
	return h.lifecycle.Publish(ctx, event.NewLifecycleEvent(event.DataReady))
}

// NewGame starts a fresh character
func (h *Host) NewGame(ctx context.Context) error {
	h.revert()
	h.player = NewPlayer()
	return h.lifecycle.Publish(ctx, event.NewLifecycleEvent(event.NewGame))
}

// LevelUp raises the player by levels, granting the natural +1 perk per level,
// then notifies perk point listeners with the new cumulative count.
func (h *Host) LevelUp(ctx context.Context, levels uint16) error {
	if h.player == nil {
		return errNoPlayer
	}
	if levels == 0 {
		return nil
	}
	if int(h.player.perkCount)+int(levels) > math.MaxInt8 ||
		int(h.player.level)+int(levels) > math.MaxUint16 {
		return fmt.Errorf("%w: level %d perks %d +%d", ErrLevelUpOutOfRange, h.player.level, h.player.perkCount, levels)
	}
	h.player.level += levels
	h.player.perkCount += int8(levels)
	return h.perkEvents.Publish(ctx, event.NewPerkPointIncreaseEvent(h.player.perkCount))
}

// SpendPerk spends one perk point
func (h *Host) SpendPerk(ctx context.Context) error {
	if h.player == nil {
		return errNoPlayer
	}
	if h.player.perkCount <= 0 {
		return fmt.Errorf("simhost: no perk points to spend")
	}
	h.player.perkCount--
	return h.perkEvents.Publish(ctx, event.NewPerkPointIncreaseEvent(h.player.perkCount))
}

// Save captures the character and runs the plugin save callback
func (h *Host) Save() (SaveGame, error) {
	if h.player == nil {
		return SaveGame{}, errNoPlayer
	}
	ch := NewSaveChannel()
	if h.onSave != nil {
		h.onSave(ch)
	}
	blob, err := ch.MarshalBinary()
	if err != nil {
		return SaveGame{}, fmt.Errorf("failed to encode co-save: %w", err)
	}
	return SaveGame{Level: h.player.level, PerkCount: h.player.perkCount, CoSave: blob}, nil
}

// Load reverts plugin state, restores the character, runs the plugin load
// callback, then announces the loaded game.
func (h *Host) Load(ctx context.Context, sg SaveGame) error {
	ch := NewSaveChannel()
	if err := ch.UnmarshalBinary(sg.CoSave); err != nil {
		return err
	}

	h.revert()
	h.player = &Player{level: sg.Level, perkCount: sg.PerkCount}
	if h.onLoad != nil {
		h.onLoad(ch)
	}
	return h.lifecycle.Publish(ctx, event.NewLifecycleEvent(event.PostLoadGame))
}

func (h *Host) revert() {
	if h.onRevert != nil {
		h.onRevert(NewSaveChannel())
	}
}
