package simhost

// Player is the simulated player character
type Player struct {
	level     uint16
	perkCount int8
}

// NewPlayer returns a level 1 character with no perk points
func NewPlayer() *Player {
	return &Player{level: 1}
}

func (p *Player) Level() uint16 { return p.level }

func (p *Player) PerkCount() int8 { return p.perkCount }

// AddPerkCount mutates the live counter; int8 wraps like the host's
func (p *Player) AddPerkCount(delta int8) { p.perkCount += delta }
