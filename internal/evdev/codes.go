// Package evdev provides minimal Linux input-layer plumbing: event
// codes, ioctl helpers, input_event decoding, and enumeration of
// /dev/input/event* nodes.
package evdev

// Event types from linux/input-event-codes.h. Only the subset this
// tool inspects.
const (
	EV_SYN = 0x00
	EV_KEY = 0x01
	EV_REL = 0x02
	EV_ABS = 0x03

	EV_MAX = 0x1f
)

// Relative axis codes.
const (
	REL_X = 0x00
	REL_Y = 0x01

	REL_MAX = 0x0f
)

// DeviceInfo describes an enumerated input device node.
type DeviceInfo struct {
	Path string
	Name string
}
