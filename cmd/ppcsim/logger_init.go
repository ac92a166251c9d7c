package main

import (
	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/logger"
)

// initLogger installs the default logger from the loaded configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		// Source locations only in dev
		AddSource: cfg.Environment == "dev" || cfg.Environment == "development",
	}.WithPlugin(cfg.RatesPath, cfg.RevertResetsState))
}
