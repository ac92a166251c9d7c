package simhost

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

type record struct {
	Type    uint32
	Version uint32
	Data    []byte
}

// SaveChannel is an in-memory co-save: an ordered list of tagged records.
// It implements the host save channel for both writing and reading.
type SaveChannel struct {
	records []record
	open    bool

	// read cursor
	next   int
	offset int
}

// NewSaveChannel returns an empty channel ready for writing
func NewSaveChannel() *SaveChannel {
	return &SaveChannel{}
}

// OpenRecord starts a new record; later writes append to it
func (c *SaveChannel) OpenRecord(recordType, version uint32) bool {
	c.records = append(c.records, record{Type: recordType, Version: version})
	c.open = true
	return true
}

// WriteRecordData appends to the open record
func (c *SaveChannel) WriteRecordData(data []byte) bool {
	if !c.open {
		return false
	}
	last := &c.records[len(c.records)-1]
	last.Data = append(last.Data, data...)
	return true
}

// GetNextRecordInfo advances to the next record, skipping unread data
func (c *SaveChannel) GetNextRecordInfo() (recordType, version, length uint32, ok bool) {
	if c.next >= len(c.records) {
		return 0, 0, 0, false
	}
	r := c.records[c.next]
	c.next++
	c.offset = 0
	return r.Type, r.Version, uint32(len(r.Data)), true
}

// ReadRecordData copies from the current record and returns the bytes read
func (c *SaveChannel) ReadRecordData(buf []byte) int {
	if c.next == 0 {
		return 0
	}
	r := c.records[c.next-1]
	n := copy(buf, r.Data[c.offset:])
	c.offset += n
	return n
}

// Rewind resets the read cursor to the first record
func (c *SaveChannel) Rewind() {
	c.next, c.offset = 0, 0
}

// Len returns the number of records
func (c *SaveChannel) Len() int {
	return len(c.records)
}

// MarshalBinary encodes all records as (type, version, length, data) little-endian tuples
func (c *SaveChannel) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range c.records {
		hdr := [3]uint32{r.Type, r.Version, uint32(len(r.Data))}
		if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
			return nil, err
		}
		buf.Write(r.Data)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the channel contents with decoded records, ready for reading
func (c *SaveChannel) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)
	var records []record
	for rd.Len() > 0 {
		var hdr [3]uint32
		if err := binary.Read(rd, binary.LittleEndian, &hdr); err != nil {
			return fmt.Errorf("corrupt co-save header: %w", err)
		}
		payload := make([]byte, hdr[2])
		if _, err := io.ReadFull(rd, payload); err != nil {
			return fmt.Errorf("corrupt co-save record %#x: %w", hdr[0], err)
		}
		records = append(records, record{Type: hdr[0], Version: hdr[1], Data: payload})
	}
	c.records = records
	c.open = false
	c.Rewind()
	return nil
}
