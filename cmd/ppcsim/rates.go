package main

import (
	"context"
	"fmt"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/ratetable"
)

// RatesCommand prints the rate table as the plugin would load it
type RatesCommand struct {
	cfg *config.Config
}

func (c *RatesCommand) Name() string {
	return "rates"
}

func (c *RatesCommand) Description() string {
	return "Show the parsed rate table (optional path argument)"
}

func (c *RatesCommand) Run(args []string) error {
	path := c.cfg.RatesPath
	if len(args) > 0 {
		path = args[0]
	}

	table := ratetable.NewLoader(0).Load(path)
	PrintHeader(fmt.Sprintf("Rates from %s", path))
	for _, e := range table.Entries() {
		PrintInfo("%-12s %g", e.Range, e.Rate)
	}
	PrintSuccess("%d ranges", table.Len())
	return nil
}

// SlotsCommand lists stored save slots
type SlotsCommand struct {
	cfg *config.Config
}

func (c *SlotsCommand) Name() string {
	return "slots"
}

func (c *SlotsCommand) Description() string {
	return "List save slots in the simulator database"
}

func (c *SlotsCommand) Run(args []string) error {
	ctx := context.Background()

	db, err := database.Open(ctx, c.cfg.SaveDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	slots, err := database.NewSaveRepository(db).List(ctx)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Save slots in %s", c.cfg.SaveDBPath))
	for _, s := range slots {
		PrintInfo("%-12s level=%d perks=%d saved=%s", s.Slot, s.Level, s.PerkCount, s.SavedAt.Format("2006-01-02 15:04:05"))
	}
	PrintSuccess("%d slots", len(slots))
	return nil
}
