package serialization

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/osse101/PerkPoints_Go/internal/domain"
)

// Interface is the host's save-game channel as seen from a save/load/revert callback.
// Reads past the end of a record return fewer bytes; GetNextRecordInfo skips any unread data.
type Interface interface {
	OpenRecord(recordType, version uint32) bool
	WriteRecordData(data []byte) bool
	GetNextRecordInfo() (recordType, version, length uint32, ok bool)
	ReadRecordData(buf []byte) int
}

// Callback is invoked by the host for save, load and revert
type Callback func(intfc Interface)

// Registrar is the host's serialization registration API
type Registrar interface {
	SetUniqueID(id uint32)
	SetSaveCallback(cb Callback)
	SetLoadCallback(cb Callback)
	SetRevertCallback(cb Callback)
}

// EncodeCarry serializes the carry as a little-endian IEEE-754 float32
func EncodeCarry(carry float32) []byte {
	buf := make([]byte, domain.RecordPayloadSize)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(carry))
	return buf
}

// DecodeCarry parses a payload written by EncodeCarry
func DecodeCarry(data []byte) (float32, error) {
	if len(data) < domain.RecordPayloadSize {
		return 0, fmt.Errorf("%w: got %d of %d bytes", domain.ErrRecordTruncated, len(data), domain.RecordPayloadSize)
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}
