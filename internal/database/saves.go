package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/PerkPoints_Go/internal/simhost"
)

// ErrSlotNotFound is returned when loading a slot that was never saved
var ErrSlotNotFound = errors.New(ErrMsgSlotNotFound)

// SlotInfo describes one stored save
type SlotInfo struct {
	Slot      string    `json:"slot"`
	Level     uint16    `json:"level"`
	PerkCount int8      `json:"perk_count"`
	SavedAt   time.Time `json:"saved_at"`
}

// SaveRepository stores simulator save games by slot name
type SaveRepository struct {
	db *sql.DB
}

// NewSaveRepository wraps an open save database
func NewSaveRepository(db *sql.DB) *SaveRepository {
	return &SaveRepository{db: db}
}

// Put writes a save game to slot, replacing what was there
func (r *SaveRepository) Put(ctx context.Context, slot string, sg simhost.SaveGame) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO save_slots (slot, level, perk_count, cosave, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			level = excluded.level,
			perk_count = excluded.perk_count,
			cosave = excluded.cosave,
			saved_at = excluded.saved_at`,
		slot, int(sg.Level), int(sg.PerkCount), sg.CoSave, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteSlot, slot, err)
	}
	return nil
}

// Get reads the save game in slot
func (r *SaveRepository) Get(ctx context.Context, slot string) (simhost.SaveGame, error) {
	var (
		level, perks int
		cosave       []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT level, perk_count, cosave FROM save_slots WHERE slot = ?`, slot).
		Scan(&level, &perks, &cosave)
	if errors.Is(err, sql.ErrNoRows) {
		return simhost.SaveGame{}, fmt.Errorf("%w: %s", ErrSlotNotFound, slot)
	}
	if err != nil {
		return simhost.SaveGame{}, fmt.Errorf("%s %q: %w", ErrMsgFailedToReadSlot, slot, err)
	}
	return simhost.SaveGame{Level: uint16(level), PerkCount: int8(perks), CoSave: cosave}, nil
}

// List returns every slot, most recent first
func (r *SaveRepository) List(ctx context.Context) ([]SlotInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot, level, perk_count, saved_at FROM save_slots ORDER BY saved_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSlots, err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var (
			info         SlotInfo
			level, perks int
		)
		if err := rows.Scan(&info.Slot, &level, &perks, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSlots, err)
		}
		info.Level, info.PerkCount = uint16(level), int8(perks)
		slots = append(slots, info)
	}
	return slots, rows.Err()
}
