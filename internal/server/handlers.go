package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/session"
	"github.com/osse101/PerkPoints_Go/internal/simhost"
)

// LevelUpRequest raises the player by Levels
type LevelUpRequest struct {
	Levels uint16 `json:"levels"`
}

// SlotRequest names a save slot
type SlotRequest struct {
	Slot string `json:"slot"`
}

// ReloadResponse reports the number of ranges after a reload
type ReloadResponse struct {
	Ranges int `json:"ranges"`
}

type handlers struct {
	sim *session.Session
}

func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "path", r.URL.Path, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	return true
}

func (h *handlers) respondSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrSlotNotFound):
		respondError(w, http.StatusNotFound, ErrMsgSlotNotFound)
	case errors.Is(err, simhost.ErrLevelUpOutOfRange):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrEmptySlot):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.FromContext(r.Context()).Error(ErrMsgServerError, "path", r.URL.Path, "error", err)
		respondError(w, http.StatusConflict, err.Error())
	}
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) getState(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.sim.Snapshot()})
}

func (h *handlers) getRates(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.sim.Rates()})
}

func (h *handlers) reloadRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: ReloadResponse{Ranges: h.sim.Reload(r.Context())}})
}

func (h *handlers) levelUp(w http.ResponseWriter, r *http.Request) {
	req := LevelUpRequest{Levels: 1}
	if r.ContentLength != 0 && !decodeRequest(w, r, &req) {
		return
	}
	if req.Levels == 0 || req.Levels > MaxLevelsPerUp {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	snap, err := h.sim.LevelUp(r.Context(), req.Levels)
	if err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: snap})
}

func (h *handlers) spendPerk(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sim.SpendPerk(r.Context())
	if err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: snap})
}

func (h *handlers) newGame(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sim.NewGame(r.Context())
	if err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: snap})
}

func (h *handlers) saveGame(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := h.sim.Save(r.Context(), req.Slot); err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: "saved", Data: req})
}

func (h *handlers) loadGame(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	snap, err := h.sim.Load(r.Context(), req.Slot)
	if err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: "loaded", Data: snap})
}

func (h *handlers) listSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.sim.Slots(r.Context())
	if err != nil {
		h.respondSessionError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: slots})
}
