package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string
	AddSource   bool

	// Plugin settings stamped on every record, so a log excerpt names the
	// rate file and revert mode it was produced under
	RatesPath         string
	RevertResetsState bool
}

// DefaultConfig returns text logging at info level with no plugin attributes
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// WithPlugin returns a copy of c carrying the plugin settings
func (c Config) WithPlugin(ratesPath string, revertResetsState bool) Config {
	c.RatesPath = ratesPath
	c.RevertResetsState = revertResetsState
	return c
}

// LogLevel converts string level to slog.Level, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns the attributes added to all logs. The plugin group
// is present only when a rate file is configured.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.RatesPath != "" {
		attrs = append(attrs, slog.Group(AttrKeyPlugin,
			slog.String(AttrKeyRatesPath, c.RatesPath),
			slog.Bool(AttrKeyRevertResets, c.RevertResetsState),
		))
	}
	return attrs
}
