package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
	"github.com/osse101/PerkPoints_Go/internal/plugin"
	"github.com/osse101/PerkPoints_Go/internal/simhost"
)

// ErrEmptySlot is returned for save/load calls without a slot name
var ErrEmptySlot = errors.New(ErrMsgEmptySlot)

// Store persists save games by slot
type Store interface {
	Put(ctx context.Context, slot string, sg simhost.SaveGame) error
	Get(ctx context.Context, slot string) (simhost.SaveGame, error)
	List(ctx context.Context) ([]database.SlotInfo, error)
}

// Snapshot is the observable state of a running simulation
type Snapshot struct {
	Level     uint16                     `json:"level"`
	PerkCount int8                       `json:"perk_count"`
	Active    bool                       `json:"active"`
	Progress  domain.PlayerProgressState `json:"progress"`
}

// Session runs one simulated game with the plugin loaded into it. All methods
// serialize on one lock, standing in for the host's single game thread.
type Session struct {
	mu     sync.Mutex
	host   *simhost.Host
	plugin *plugin.Context
	store  Store
}

// Start builds a host from cfg, loads the plugin into it, delivers DataReady
// and begins a new game.
func Start(ctx context.Context, cfg *config.Config, store Store) (*Session, error) {
	host := simhost.New(simhost.WithRuntime(cfg.RuntimeVersion))
	metrics.NewEventMetricsCollector().Register(host)

	pc, err := plugin.Load(host, plugin.Options{
		RatesPath:         cfg.RatesPath,
		LookupCacheSize:   cfg.LookupCacheSize,
		RevertResetsState: cfg.RevertResetsState,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPluginLoadFailed, err)
	}

	if err := host.DataReady(ctx); err != nil {
		return nil, err
	}
	if err := host.NewGame(ctx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSessionStarted, "runtime", cfg.RuntimeVersion, "ranges", len(pc.Rates()), "active", pc.Active())
	return &Session{host: host, plugin: pc, store: store}, nil
}

// Snapshot returns the player and plugin state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{Active: s.plugin.Active(), Progress: s.plugin.State()}
	if p := s.host.Player(); p != nil {
		snap.Level, snap.PerkCount = p.Level(), p.PerkCount()
	}
	return snap
}

// Rates returns the configured rate entries in lookup order
func (s *Session) Rates() []domain.RateEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plugin.Rates()
}

// Reload re-reads the rate file and returns the number of ranges loaded
func (s *Session) Reload(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.plugin.Reload()
	logger.FromContext(ctx).Info(LogMsgRatesReloaded, "ranges", n)
	return n
}

// LevelUp raises the player by levels
func (s *Session) LevelUp(ctx context.Context, levels uint16) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.LevelUp(ctx, levels); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// SpendPerk spends one perk point
func (s *Session) SpendPerk(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.SpendPerk(ctx); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// NewGame discards the current character and starts over
func (s *Session) NewGame(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.NewGame(ctx); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// Save writes the current game to slot
func (s *Session) Save(ctx context.Context, slot string) error {
	if slot == "" {
		return ErrEmptySlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sg, err := s.host.Save()
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, slot, sg); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgGameSaved, "slot", slot, "level", sg.Level)
	return nil
}

// Load replaces the current game with the one in slot
func (s *Session) Load(ctx context.Context, slot string) (Snapshot, error) {
	if slot == "" {
		return Snapshot{}, ErrEmptySlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sg, err := s.store.Get(ctx, slot)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.host.Load(ctx, sg); err != nil {
		return Snapshot{}, err
	}

	logger.FromContext(ctx).Info(LogMsgGameLoaded, "slot", slot, "level", sg.Level)
	return s.snapshot(), nil
}

// Slots lists stored saves
func (s *Session) Slots(ctx context.Context) ([]database.SlotInfo, error) {
	return s.store.List(ctx)
}
