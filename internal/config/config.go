package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/PerkPoints_Go/internal/domain"
)

// Config holds the plugin and simulator configuration
type Config struct {
	RatesPath   string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// RevertResetsState also restores level/perk count to new-game defaults on revert
	RevertResetsState bool

	LookupCacheSize int `validate:"gte=0,lte=65536"`

	// Simulator settings
	RuntimeVersion string `validate:"required"`
	SaveDBPath     string `validate:"required"`
	DebugAddr      string `validate:"required,hostname_port"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		RatesPath:         getEnv(EnvRatesPath, domain.DefaultRatesPath),
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, fmt.Sprintf("%d.%d.%d", domain.VersionMajor, domain.VersionMinor, domain.VersionPatch)),
		RevertResetsState: getEnvAsBool(EnvRevertResetsState, true),
		LookupCacheSize:   getEnvAsInt(EnvLookupCacheSize, DefaultLookupCacheSize),
		RuntimeVersion:    getEnv(EnvRuntimeVersion, DefaultRuntimeVersion),
		SaveDBPath:        getEnv(EnvSaveDBPath, DefaultSaveDBPath),
		DebugAddr:         getEnv(EnvDebugAddr, DefaultDebugAddr),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
