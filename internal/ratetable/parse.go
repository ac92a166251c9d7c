package ratetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PerkPoints_Go/internal/domain"
)

var validate = validator.New()

// RawEntry is one key/value pair as read from the configuration file
type RawEntry struct {
	Section string
	Key     string
	Value   string
}

// ParseEntry turns a "low" or "low-high" key and a decimal rate into a RateEntry.
func ParseEntry(key, value string) (domain.RateEntry, error) {
	parts := splitKey(key)
	if len(parts) < 1 || len(parts) > 2 {
		return domain.RateEntry{}, fmt.Errorf("%w '%s', found %d parts", domain.ErrMalformedKey, key, len(parts))
	}

	low, err := parseLevel(parts[0])
	if err != nil {
		return domain.RateEntry{}, err
	}
	high := low
	if len(parts) == 2 {
		if high, err = parseLevel(parts[1]); err != nil {
			return domain.RateEntry{}, err
		}
	}

	r, err := domain.NewLevelRange(low, high)
	if err != nil {
		return domain.RateEntry{}, fmt.Errorf("'%s': %w", key, err)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return domain.RateEntry{}, fmt.Errorf("%w: rate '%s'", domain.ErrInvalidNumber, value)
	}

	entry := domain.RateEntry{Range: r, Rate: float32(rate)}
	if err := validate.Struct(entry); err != nil {
		return domain.RateEntry{}, fmt.Errorf("%w '%s', must be between %g and %g", domain.ErrRateOutOfRange, value, domain.MinRate, domain.MaxRate)
	}

	return entry, nil
}

// splitKey splits on the range delimiter, dropping empty tokens
func splitKey(key string) []string {
	var parts []string
	for _, p := range strings.Split(key, KeyRangeDelimiter) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func parseLevel(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: level '%s'", domain.ErrInvalidNumber, s)
	}
	return uint16(n), nil
}

// rejectReason maps a parse error to its metric label
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedKey):
		return ReasonMalformedKey
	case errors.Is(err, domain.ErrInvalidNumber):
		return ReasonInvalidNumber
	case errors.Is(err, domain.ErrInvalidRange):
		return ReasonInvalidRange
	case errors.Is(err, domain.ErrRateOutOfRange):
		return ReasonRateOutOfDomain
	default:
		return ReasonUnknown
	}
}
