package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "perk-point-control"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Log Attribute Keys
const (
	AttrKeyService      = "service"
	AttrKeyVersion      = "version"
	AttrKeyEnvironment  = "environment"
	AttrKeyEventID      = "event_id"
	AttrKeyPlugin       = "plugin"
	AttrKeyRatesPath    = "rates_path"
	AttrKeyRevertResets = "revert_resets_state"
)
