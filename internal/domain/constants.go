package domain

// Rate domain. Rates are points per level and must satisfy MinRate <= rate < MaxRate.
const (
	MinRate float32 = 0.0
	MaxRate float32 = 128.0
)

// New game defaults for a character's perk progress
const (
	DefaultLevel     uint16  = 1
	DefaultPerkCount int8    = 0
	DefaultCarry     float32 = 0.0
)

// NaturalPerksPerLevel is what the host grants per level when no rate applies.
const NaturalPerksPerLevel = 1

// Save record identity
const (
	// RecordID tags our record in the host's save channel ("hopefully non-clashing")
	RecordID uint32 = 0x23E6CC73

	// RecordPayloadSize is the size of the serialized carry (one float32)
	RecordPayloadSize = 4
)

// Plugin identity
const (
	PluginName       = "PerkPointControl"
	PluginAuthor     = "r52"
	VersionMajor     = 1
	VersionMinor     = 2
	VersionPatch     = 0
	MinRuntime       = "1.10.163"
	DefaultRatesPath = "./Data/F4SE/Plugins/ppc.ini"
)
