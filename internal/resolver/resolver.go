package resolver

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/event"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
	"github.com/osse101/PerkPoints_Go/internal/progress"
)

// RateLookup resolves the configured rate for a level
type RateLookup interface {
	Lookup(level uint16) (float32, bool)
}

// PlayerFunc returns the live player character, or nil when the host has none
type PlayerFunc func() domain.Player

// Kind classifies one perk point increase event
type Kind string

const (
	KindLevelUp     Kind = "level_up"
	KindPerkSpent   Kind = "perk_spent"
	KindPassThrough Kind = "pass_through"
	KindNoPlayer    Kind = "no_player"
)

// Outcome summarizes what the resolver did for one event
type Outcome struct {
	Kind          Kind
	FromLevel     uint16
	ToLevel       uint16
	PointsGranted int
	Carry         float32
}

// Resolver rewrites the host's per-level perk grant using a rate table.
type Resolver struct {
	rates   RateLookup
	tracker *progress.Tracker
	player  PlayerFunc
}

// New creates a resolver
func New(rates RateLookup, tracker *progress.Tracker, player PlayerFunc) *Resolver {
	return &Resolver{
		rates:   rates,
		tracker: tracker,
		player:  player,
	}
}

// HandlePerkPointIncrease is the event sink registered with the host's perk point event source
func (r *Resolver) HandlePerkPointIncrease(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PerkPointIncreasePayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode perk point increase payload: %w", err)
	}

	ctx = logger.WithEventID(ctx, logger.GenerateEventID())
	r.Resolve(ctx, payload.PerkCount)
	return nil
}

// Resolve processes one perk point increase. eventPerkCount is the host's
// post-increment cumulative count carried by the event.
func (r *Resolver) Resolve(ctx context.Context, eventPerkCount int8) Outcome {
	log := logger.FromContext(ctx)
	log.Debug("PerkPointIncreaseEvent triggered", "perk_count", eventPerkCount)

	player := r.player()
	if player == nil {
		log.Warn("No player character, perk point event ignored")
		metrics.LevelUpEvents.WithLabelValues(string(KindNoPlayer)).Inc()
		return Outcome{Kind: KindNoPlayer, Carry: r.tracker.Carry()}
	}

	oldLevel, oldCount := r.tracker.Observed()
	currentLevel := player.Level()

	out := Outcome{Kind: KindPassThrough, FromLevel: oldLevel, ToLevel: currentLevel}

	switch {
	case eventPerkCount > oldCount && currentLevel > oldLevel:
		out.Kind = KindLevelUp
		out.PointsGranted = r.levelUp(ctx, player, oldLevel, currentLevel)

	case currentLevel == oldLevel && eventPerkCount < oldCount:
		out.Kind = KindPerkSpent
		log.Debug("Perk spent")
	}

	r.tracker.SetState(currentLevel, player.PerkCount())
	out.Carry = r.tracker.Carry()

	metrics.LevelUpEvents.WithLabelValues(string(out.Kind)).Inc()
	return out
}

// levelUp neutralizes the host's +1 per level, then grants each level in
// (oldLevel, currentLevel] in ascending order. Returns the points granted.
func (r *Resolver) levelUp(ctx context.Context, player domain.Player, oldLevel, currentLevel uint16) int {
	log := logger.FromContext(ctx)

	levelDiff := int(currentLevel) - int(oldLevel)
	log.Debug("Level increased", "by", levelDiff, "current_level", currentLevel, "perk_count", player.PerkCount())

	// Offset natural increase
	addPerks(player, -levelDiff)

	total := 0
	for lev := oldLevel + 1; ; lev++ {
		total += r.resolveLevel(ctx, player, lev)
		if lev == currentLevel {
			break
		}
	}

	metrics.PerkPointsGranted.Add(float64(total))
	log.Debug("New perk count", "perk_count", player.PerkCount(), "granted", total)
	return total
}

func (r *Resolver) resolveLevel(ctx context.Context, player domain.Player, lev uint16) int {
	log := logger.FromContext(ctx)

	rate, ok := r.rates.Lookup(lev)
	if !ok {
		log.Debug("No range matched level, keeping natural perk count increase", "level", lev)
		points := progress.NoMatchFallback()
		addPerks(player, points)
		metrics.LevelsProcessed.WithLabelValues(metrics.MatchNatural).Inc()
		return points
	}

	points, leftover := progress.ApplyRate(r.tracker.Carry(), rate)
	log.Debug("Adding perk points for level", "level", lev, "rate", rate, "points", points, "remaining_progress", leftover)

	addPerks(player, points)
	r.tracker.SetCarry(leftover)
	metrics.LevelsProcessed.WithLabelValues(metrics.MatchConfigured).Inc()
	return points
}

// addPerks applies n to the host counter in int8-sized steps
func addPerks(player domain.Player, n int) {
	for n > math.MaxInt8 {
		player.AddPerkCount(math.MaxInt8)
		n -= math.MaxInt8
	}
	for n < math.MinInt8 {
		player.AddPerkCount(math.MinInt8)
		n -= math.MinInt8
	}
	if n != 0 {
		player.AddPerkCount(int8(n))
	}
}
