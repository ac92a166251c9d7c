package domain

import "fmt"

// LevelRange is a closed interval [Low, High] of character levels.
type LevelRange struct {
	Low  uint16 `json:"low"`
	High uint16 `json:"high" validate:"gtefield=Low"`
}

// NewLevelRange builds a range, rejecting low > high.
func NewLevelRange(low, high uint16) (LevelRange, error) {
	if low > high {
		return LevelRange{}, fmt.Errorf("%w: low = %d, high = %d", ErrInvalidRange, low, high)
	}
	return LevelRange{Low: low, High: high}, nil
}

// SingleLevel is the range covering exactly one level.
func SingleLevel(level uint16) LevelRange {
	return LevelRange{Low: level, High: level}
}

// Contains reports whether level lies within the range, bounds included.
func (r LevelRange) Contains(level uint16) bool {
	return r.Low <= level && level <= r.High
}

// Less orders ranges by endpoint: r sorts before o when r ends before o starts.
// Not a total order once ranges overlap.
func (r LevelRange) Less(o LevelRange) bool {
	return r.High < o.Low
}

// Overlaps reports whether the two ranges share at least one level.
func (r LevelRange) Overlaps(o LevelRange) bool {
	return r.Low <= o.High && o.Low <= r.High
}

func (r LevelRange) String() string {
	if r.Low == r.High {
		return fmt.Sprintf("%d", r.Low)
	}
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// RateEntry pairs a level range with its perk points per level.
type RateEntry struct {
	Range LevelRange `json:"range"`
	Rate  float32    `json:"rate" validate:"gte=0,lt=128"`
}
