package ratetable

// KeyRangeDelimiter separates the bounds of a "low-high" key
const KeyRangeDelimiter = "-"

// Reject reasons reported to metrics
const (
	ReasonMalformedKey    = "malformed_key"
	ReasonInvalidNumber   = "invalid_number"
	ReasonInvalidRange    = "invalid_range"
	ReasonRateOutOfDomain = "rate_out_of_range"
	ReasonUnknown         = "unknown"
)

// Log messages
const (
	LogMsgEntryRejected    = "Skipping rate entry"
	LogMsgEntryRegistered  = "Registering rate range"
	LogMsgRangesOverlap    = "Overlapping level ranges, the lower-starting range wins"
	LogMsgConfigReadFailed = "Failed to read rate configuration, using natural perk growth"
	LogMsgConfigLoaded     = "Rate configuration loaded"
	LogMsgCacheDisabled    = "Rate lookup cache disabled"
)
