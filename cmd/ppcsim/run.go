package main

import (
	"context"
	"fmt"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/session"
)

// RunCommand plays a scripted sequence of game actions
type RunCommand struct {
	cfg *config.Config
}

func (c *RunCommand) Name() string {
	return "run"
}

func (c *RunCommand) Description() string {
	return "Play a script, e.g. run levelup:5 save:a spend load:a state"
}

func (c *RunCommand) Run(args []string) error {
	steps, err := parseScript(args)
	if err != nil {
		return err
	}

	ctx := logger.WithEventID(context.Background(), logger.GenerateEventID())

	db, err := database.Open(ctx, c.cfg.SaveDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	sim, err := session.Start(ctx, c.cfg, database.NewSaveRepository(db))
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("ppcsim run (%d steps)", len(steps)))
	printSnapshot("start", sim.Snapshot())

	for _, s := range steps {
		snap, err := runStep(ctx, sim, s)
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		printSnapshot(s.String(), snap)
	}

	PrintSuccess("Done")
	return nil
}

func printSnapshot(label string, snap session.Snapshot) {
	PrintInfo("%-12s level=%d perks=%d carry=%.4f active=%t",
		label, snap.Level, snap.PerkCount, snap.Progress.FractionalCarry, snap.Active)
}
