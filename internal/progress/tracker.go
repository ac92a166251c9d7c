package progress

import (
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/logger"
)

// Tracker owns the progress state of the player character.
// One Tracker per plugin context; the host serializes every call.
type Tracker struct {
	state domain.PlayerProgressState
}

// NewTracker returns a tracker holding new-game defaults
func NewTracker() *Tracker {
	return &Tracker{state: domain.NewGameProgressState()}
}

// State returns a copy of the current state
func (t *Tracker) State() domain.PlayerProgressState {
	return t.state
}

// Observed returns the last observed level and perk count
func (t *Tracker) Observed() (level uint16, perkCount int8) {
	return t.state.LastObservedLevel, t.state.LastObservedPerkCount
}

// SetState records the host character's level and perk count
func (t *Tracker) SetState(level uint16, perkCount int8) {
	logger.Debug("Saving PlayerCharacter state", "level", level, "perk_count", perkCount)
	t.state.LastObservedLevel = level
	t.state.LastObservedPerkCount = perkCount
}

// SyncFrom re-reads level and perk count from the live character
func (t *Tracker) SyncFrom(p domain.Player) {
	t.SetState(p.Level(), p.PerkCount())
}

// Carry returns the fractional carry
func (t *Tracker) Carry() float32 {
	return t.state.FractionalCarry
}

// SetCarry stores the fractional carry. Values outside [0,1) reset it to 0.
func (t *Tracker) SetCarry(c float32) {
	if !ValidCarry(c) {
		logger.Warn("Discarding out of range perk progress", "progress", c)
		c = domain.DefaultCarry
	}
	logger.Debug("Saving perk progress", "progress", c)
	t.state.FractionalCarry = c
}

// Reset clears the carry; with resetObserved the level/perk count return to new-game defaults too.
func (t *Tracker) Reset(resetObserved bool) {
	t.state.FractionalCarry = domain.DefaultCarry
	if resetObserved {
		t.SetState(domain.DefaultLevel, domain.DefaultPerkCount)
	}
}
