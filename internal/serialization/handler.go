package serialization

import (
	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
	"github.com/osse101/PerkPoints_Go/internal/progress"
)

// Handler persists the fractional carry through the host's save channel
type Handler struct {
	tracker       *progress.Tracker
	version       uint32
	resetObserved bool
}

// NewHandler creates a save/load/revert handler. With resetObserved, revert
// also returns the observed level/perk count to new-game defaults.
func NewHandler(tracker *progress.Tracker, resetObserved bool) *Handler {
	return &Handler{
		tracker:       tracker,
		version:       domain.VersionMajor,
		resetObserved: resetObserved,
	}
}

// Register installs the callbacks under our record id
func (h *Handler) Register(r Registrar) {
	r.SetUniqueID(domain.RecordID)
	r.SetSaveCallback(h.OnSave)
	r.SetLoadCallback(h.OnLoad)
	r.SetRevertCallback(h.OnRevert)
}

// OnSave writes one record holding the carry
func (h *Handler) OnSave(intfc Interface) {
	carry := h.tracker.Carry()

	if !intfc.OpenRecord(domain.RecordID, h.version) {
		logger.Error("Failed to open save record", "id", domain.RecordID)
		metrics.SaveRecords.WithLabelValues(metrics.OpSave, metrics.ResultFailed).Inc()
		return
	}

	if !intfc.WriteRecordData(EncodeCarry(carry)) {
		logger.Error("Failed to write save record", "id", domain.RecordID)
		metrics.SaveRecords.WithLabelValues(metrics.OpSave, metrics.ResultFailed).Inc()
		return
	}

	logger.Debug("Wrote save data", "perk_progress", carry)
	metrics.SaveRecords.WithLabelValues(metrics.OpSave, metrics.ResultOK).Inc()
}

// OnLoad restores the carry. A missing or short record resets it to 0.
func (h *Handler) OnLoad(intfc Interface) {
	found := false

	for {
		recordType, version, length, ok := intfc.GetNextRecordInfo()
		if !ok {
			break
		}
		if recordType != domain.RecordID {
			continue
		}
		found = true

		buf := make([]byte, domain.RecordPayloadSize)
		n := intfc.ReadRecordData(buf)
		carry, err := DecodeCarry(buf[:n])
		if err != nil {
			logger.Warn("Discarding perk progress record", "version", version, "length", length, "error", err)
			h.tracker.SetCarry(domain.DefaultCarry)
			metrics.SaveRecords.WithLabelValues(metrics.OpLoad, metrics.ResultDefault).Inc()
			continue
		}

		h.tracker.SetCarry(carry)
		metrics.SaveRecords.WithLabelValues(metrics.OpLoad, metrics.ResultOK).Inc()
	}

	if !found {
		logger.Debug("No perk progress record in save")
		h.tracker.SetCarry(domain.DefaultCarry)
		metrics.SaveRecords.WithLabelValues(metrics.OpLoad, metrics.ResultDefault).Inc()
	}
}

// OnRevert clears serialization data before a load or new game
func (h *Handler) OnRevert(Interface) {
	logger.Debug("Clearing serialization data")
	h.tracker.Reset(h.resetObserved)
	metrics.SaveRecords.WithLabelValues(metrics.OpRevert, metrics.ResultOK).Inc()
}
