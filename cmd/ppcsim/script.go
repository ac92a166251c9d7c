package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/PerkPoints_Go/internal/session"
)

// Step actions understood by the run command
const (
	actionLevelUp = "levelup"
	actionSpend   = "spend"
	actionNew     = "new"
	actionSave    = "save"
	actionLoad    = "load"
	actionReload  = "reload"
	actionState   = "state"
)

// maxLevelsPerStep keeps one level-up within the host's int8 perk counter
const maxLevelsPerStep = math.MaxInt8

// step is one scripted action, written as "action" or "action:arg"
type step struct {
	action string
	levels uint16
	slot   string
}

func (s step) String() string {
	switch s.action {
	case actionLevelUp:
		return fmt.Sprintf("%s:%d", s.action, s.levels)
	case actionSave, actionLoad:
		return s.action + ":" + s.slot
	}
	return s.action
}

func parseStep(raw string) (step, error) {
	action, arg, hasArg := strings.Cut(strings.TrimSpace(raw), ":")
	s := step{action: strings.ToLower(action)}

	switch s.action {
	case actionLevelUp:
		s.levels = 1
		if hasArg {
			n, err := strconv.ParseUint(arg, 10, 16)
			if err != nil || n == 0 || n > maxLevelsPerStep {
				return step{}, fmt.Errorf("invalid level count %q", arg)
			}
			s.levels = uint16(n)
		}
	case actionSave, actionLoad:
		if !hasArg || arg == "" {
			return step{}, fmt.Errorf("%s needs a slot name", s.action)
		}
		s.slot = arg
	case actionSpend, actionNew, actionReload, actionState:
		if hasArg {
			return step{}, fmt.Errorf("%s takes no argument", s.action)
		}
	default:
		return step{}, fmt.Errorf("unknown action %q", action)
	}

	return s, nil
}

func parseScript(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, raw := range args {
		s, err := parseStep(raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// runStep applies s to sim and returns the resulting snapshot
func runStep(ctx context.Context, sim *session.Session, s step) (session.Snapshot, error) {
	switch s.action {
	case actionLevelUp:
		return sim.LevelUp(ctx, s.levels)
	case actionSpend:
		return sim.SpendPerk(ctx)
	case actionNew:
		return sim.NewGame(ctx)
	case actionSave:
		if err := sim.Save(ctx, s.slot); err != nil {
			return session.Snapshot{}, err
		}
	case actionLoad:
		return sim.Load(ctx, s.slot)
	case actionReload:
		sim.Reload(ctx)
	}
	return sim.Snapshot(), nil
}
