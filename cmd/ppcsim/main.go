package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/osse101/PerkPoints_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)

	registry := NewRegistry(
		&RunCommand{cfg: cfg},
		&ServeCommand{cfg: cfg},
		&RatesCommand{cfg: cfg},
		&SlotsCommand{cfg: cfg},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		PrintError("%v", err)
		if errors.Is(err, errNoCommand) || errors.Is(err, errUnknownCommand) {
			registry.WriteHelp(os.Stdout)
		}
		os.Exit(1)
	}
}
