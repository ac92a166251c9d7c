package session

// Log messages
const (
	LogMsgSessionStarted = "Simulation session started"
	LogMsgGameSaved      = "Game saved"
	LogMsgGameLoaded     = "Game loaded"
	LogMsgRatesReloaded  = "Rate configuration reloaded"
)

// Error messages
const (
	ErrMsgPluginLoadFailed = "failed to load plugin"
	ErrMsgEmptySlot        = "slot name must not be empty"
)
