package config

// Environment variable names
const (
	EnvRatesPath         = "PPC_RATES_PATH"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvRevertResetsState = "PPC_REVERT_RESETS_STATE"
	EnvLookupCacheSize   = "PPC_LOOKUP_CACHE_SIZE"
	EnvRuntimeVersion    = "PPC_RUNTIME_VERSION"
	EnvSaveDBPath        = "PPC_SAVE_DB"
	EnvDebugAddr         = "PPC_DEBUG_ADDR"
)

// Defaults
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "perk-point-control"
	DefaultLookupCacheSize = 256
	DefaultRuntimeVersion  = "1.10.984"
	DefaultSaveDBPath      = "ppcsim.db"
	DefaultDebugAddr       = "localhost:8089"
)
