package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/session"
)

type snapshotResponse struct {
	Data session.Snapshot `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "ppc.ini")
	require.NoError(t, os.WriteFile(path, []byte("2-3 = 0.5\n4 = 3\n"), 0o644))

	db, err := database.Open(ctx, database.InMemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sim, err := session.Start(ctx, &config.Config{
		RatesPath:         path,
		RevertResetsState: true,
		RuntimeVersion:    domain.MinRuntime,
	}, database.NewSaveRepository(db))
	require.NoError(t, err)

	return NewRouter(sim)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) session.Snapshot {
	t.Helper()
	var resp snapshotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Data
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLevelUpThroughAPI(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decodeSnapshot(t, rec)
	assert.Equal(t, uint16(4), snap.Level)
	// 0.5 + 0.5 at levels 2-3 then 3 at level 4
	assert.Equal(t, int8(4), snap.PerkCount)

	rec = do(t, h, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snap, decodeSnapshot(t, rec))
}

func TestLevelUpDefaultsToOneLevel(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/v1/player/levelup", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint16(2), decodeSnapshot(t, rec).Level)
}

func TestLevelUpRejectsBadBody(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/player/levelup", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":200}`).Code)
}

func TestLevelUpPastPerkCounterConflicts(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":100}`)
	require.Equal(t, http.StatusOK, rec.Code)
	// 1 from levels 2-3, 3 at level 4, natural +1 for 5-101
	assert.Equal(t, int8(101), decodeSnapshot(t, rec).PerkCount)

	rec = do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":100}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint16(101), decodeSnapshot(t, rec).Level)
}

func TestSaveAndLoadSlots(t *testing.T) {
	h := newTestRouter(t)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/player/levelup", `{"levels":1}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/game/save", `{"slot":"a"}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/game/new", "").Code)

	rec := do(t, h, http.MethodPost, "/api/v1/game/load", `{"slot":"a"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeSnapshot(t, rec)
	assert.Equal(t, uint16(2), snap.Level)
	assert.InDelta(t, 0.5, snap.Progress.FractionalCarry, 1e-6)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/v1/game/load", `{"slot":"b"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/game/save", `{"slot":""}`).Code)

	rec = do(t, h, http.MethodGet, "/api/v1/game/slots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slot":"a"`)
}

func TestSpendWithoutPointsConflicts(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/v1/player/spend", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRatesAndReload(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/rates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rates struct {
		Data []domain.RateEntry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rates))
	assert.Len(t, rates.Data, 2)

	rec = do(t, h, http.MethodPost, "/api/v1/rates/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"ranges":2}}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ppc_")
}
