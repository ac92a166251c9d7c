package domain

// PlayerProgressState is one character's perk accrual as last observed.
// Only FractionalCarry is persisted; the level/count pair is re-read from the host.
type PlayerProgressState struct {
	LastObservedLevel     uint16  `json:"last_observed_level"`
	LastObservedPerkCount int8    `json:"last_observed_perk_count"`
	FractionalCarry       float32 `json:"fractional_carry"`
}

// NewGameProgressState returns the state of a fresh character.
func NewGameProgressState() PlayerProgressState {
	return PlayerProgressState{
		LastObservedLevel:     DefaultLevel,
		LastObservedPerkCount: DefaultPerkCount,
		FractionalCarry:       DefaultCarry,
	}
}

// Player is the live host character as seen by the resolver.
// AddPerkCount mutates the host's own counter in place.
type Player interface {
	Level() uint16
	PerkCount() int8
	AddPerkCount(delta int8)
}
