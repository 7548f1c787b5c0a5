package evdev

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Event is a decoded kernel input_event.
type Event struct {
	Time  time.Time
	Type  uint16
	Code  uint16
	Value int32
}

// Wire sizes of struct input_event: 16 bytes with 32-bit timevals,
// 24 bytes with 64-bit timevals. Modern 64-bit kernels deliver the
// latter.
const (
	eventSize32 = 16
	eventSize64 = 24
)

// decodeEvent decodes a single input_event record. The record length
// selects the timeval layout.
func decodeEvent(b []byte) (Event, error) {
	var ev Event
	switch len(b) {
	case eventSize64:
		sec := int64(binary.LittleEndian.Uint64(b[0:8]))
		usec := int64(binary.LittleEndian.Uint64(b[8:16]))
		ev.Time = time.Unix(sec, usec*1000)
		ev.Type = binary.LittleEndian.Uint16(b[16:18])
		ev.Code = binary.LittleEndian.Uint16(b[18:20])
		ev.Value = int32(binary.LittleEndian.Uint32(b[20:24]))
	case eventSize32:
		sec := int64(binary.LittleEndian.Uint32(b[0:4]))
		usec := int64(binary.LittleEndian.Uint32(b[4:8]))
		ev.Time = time.Unix(sec, usec*1000)
		ev.Type = binary.LittleEndian.Uint16(b[8:10])
		ev.Code = binary.LittleEndian.Uint16(b[10:12])
		ev.Value = int32(binary.LittleEndian.Uint32(b[12:16]))
	default:
		return Event{}, fmt.Errorf("input_event record of %d bytes, want %d or %d", len(b), eventSize32, eventSize64)
	}
	return ev, nil
}

// hasBit reports whether bit n is set in a kernel capability bitmask.
func hasBit(mask []byte, n int) bool {
	if n/8 >= len(mask) {
		return false
	}
	return mask[n/8]&(1<<(uint(n)%8)) != 0
}
