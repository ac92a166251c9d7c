package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rate table errors
	ErrMsgInvalidRange   = "level range must be from low to high"
	ErrMsgMalformedKey   = "incorrect range value"
	ErrMsgRateOutOfRange = "invalid perk count rate"
	ErrMsgInvalidNumber  = "not a number"

	// Configuration file errors
	ErrMsgConfigUnreadable = "failed to read rate configuration"

	// Host integration errors
	ErrMsgEditorContext      = "loaded in editor"
	ErrMsgUnsupportedRuntime = "unsupported runtime"
	ErrMsgEventSourceMissing = "perk point event source not found"
	ErrMsgNoPlayer           = "player character unavailable"

	// Save data errors
	ErrMsgRecordTruncated = "record payload truncated"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Rate table errors
	ErrInvalidRange   = errors.New(ErrMsgInvalidRange)
	ErrMalformedKey   = errors.New(ErrMsgMalformedKey)
	ErrRateOutOfRange = errors.New(ErrMsgRateOutOfRange)
	ErrInvalidNumber  = errors.New(ErrMsgInvalidNumber)

	// Configuration file errors
	ErrConfigUnreadable = errors.New(ErrMsgConfigUnreadable)

	// Host integration errors
	ErrEditorContext      = errors.New(ErrMsgEditorContext)
	ErrUnsupportedRuntime = errors.New(ErrMsgUnsupportedRuntime)
	ErrEventSourceMissing = errors.New(ErrMsgEventSourceMissing)
	ErrNoPlayer           = errors.New(ErrMsgNoPlayer)

	// Save data errors
	ErrRecordTruncated = errors.New(ErrMsgRecordTruncated)
)
