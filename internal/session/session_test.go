package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/simhost"
)

func newSession(t *testing.T, rates string) (*Session, string) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "ppc.ini")
	require.NoError(t, os.WriteFile(path, []byte(rates), 0o644))

	db, err := database.Open(ctx, database.InMemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		RatesPath:         path,
		RevertResetsState: true,
		LookupCacheSize:   16,
		RuntimeVersion:    domain.MinRuntime,
	}
	s, err := Start(ctx, cfg, database.NewSaveRepository(db))
	require.NoError(t, err)
	return s, path
}

func TestStart_RejectsOldRuntime(t *testing.T) {
	_, err := Start(context.Background(), &config.Config{RuntimeVersion: "1.9.0"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedRuntime)
}

func TestSession_LevelUpAppliesRates(t *testing.T) {
	s, _ := newSession(t, "2-5 = 0.5\n")
	ctx := context.Background()

	snap, err := s.LevelUp(ctx, 4)
	require.NoError(t, err)

	assert.True(t, snap.Active)
	assert.Equal(t, uint16(5), snap.Level)
	assert.Equal(t, int8(2), snap.PerkCount)
	assert.InDelta(t, 0.0, snap.Progress.FractionalCarry, 1e-6)
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	s, _ := newSession(t, "2-10 = 0.5\n")
	ctx := context.Background()

	_, err := s.LevelUp(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "one"))

	_, err = s.LevelUp(ctx, 2)
	require.NoError(t, err)

	snap, err := s.Load(ctx, "one")
	require.NoError(t, err)
	assert.Equal(t, uint16(2), snap.Level)
	assert.Equal(t, int8(0), snap.PerkCount)
	assert.InDelta(t, 0.5, snap.Progress.FractionalCarry, 1e-6)

	snap, err = s.LevelUp(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(1), snap.PerkCount)
	assert.InDelta(t, 0.0, snap.Progress.FractionalCarry, 1e-6)

	slots, err := s.Slots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "one", slots[0].Slot)
}

func TestSession_LoadMissingSlot(t *testing.T) {
	s, _ := newSession(t, "")

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, database.ErrSlotNotFound)

	_, err = s.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestSession_Reload(t *testing.T) {
	s, path := newSession(t, "2 = 3\n")
	require.Len(t, s.Rates(), 1)

	require.NoError(t, os.WriteFile(path, []byte("2 = 3\n3-4 = 0\n"), 0o644))
	assert.Equal(t, 2, s.Reload(context.Background()))
	assert.Len(t, s.Rates(), 2)
}

func TestSession_SpendPerkAndNewGame(t *testing.T) {
	s, _ := newSession(t, "")
	ctx := context.Background()

	_, err := s.SpendPerk(ctx)
	assert.Error(t, err)

	_, err = s.LevelUp(ctx, 2)
	require.NoError(t, err)
	snap, err := s.SpendPerk(ctx)
	require.NoError(t, err)
	assert.Equal(t, int8(1), snap.PerkCount)
	assert.Equal(t, int8(1), snap.Progress.LastObservedPerkCount)

	snap, err = s.NewGame(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewGameProgressState(), snap.Progress)
	assert.Equal(t, uint16(1), snap.Level)
}

func TestSession_LevelUpPastPerkCounterIsRejected(t *testing.T) {
	s, _ := newSession(t, "1-300 = 0.5\n")
	ctx := context.Background()

	_, err := s.LevelUp(ctx, 200)
	require.ErrorIs(t, err, simhost.ErrLevelUpOutOfRange)

	snap := s.Snapshot()
	assert.Equal(t, uint16(1), snap.Level)
	assert.Equal(t, int8(0), snap.PerkCount)

	snap, err = s.LevelUp(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, uint16(101), snap.Level)
	assert.Equal(t, int8(50), snap.PerkCount)
}
