package progress

import (
	"math"

	"github.com/osse101/PerkPoints_Go/internal/domain"
)

// ApplyRate adds one level's rate to the running carry and splits the sum into
// whole points to grant and the fractional remainder.
func ApplyRate(carry, rate float32) (points int, newCarry float32) {
	sum := float64(carry) + float64(rate)
	whole := math.Floor(sum)
	newCarry = float32(sum - whole)

	// float32 rounding of a remainder just under 1 can land on 1 exactly
	if newCarry >= 1 {
		whole++
		newCarry = 0
	}
	if newCarry < 0 {
		newCarry = 0
	}

	return int(whole), newCarry
}

// NoMatchFallback is the host's natural growth for a level without a configured rate.
// The carry is left untouched.
func NoMatchFallback() int {
	return domain.NaturalPerksPerLevel
}

// ValidCarry reports whether c is a usable fractional carry
func ValidCarry(c float32) bool {
	return c >= 0 && c < 1
}
