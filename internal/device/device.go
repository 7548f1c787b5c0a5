// Package device defines the abstraction layer for pointing devices.
// Both the evdev-backed hardware adapter and the scripted fake used in
// tests implement the Device interface.
package device

import (
	"errors"
	"time"
)

// Errors surfaced across the device boundary.
var (
	// ErrUnavailable means the device node could not be opened:
	// removed device, permission change, or a race with another
	// process.
	ErrUnavailable = errors.New("device unavailable")

	// ErrGrabFailed means exclusive access was denied, typically
	// because another process already holds the grab.
	ErrGrabFailed = errors.New("exclusive grab failed")
)

// Axis identifies a relative motion axis.
type Axis int

// Motion axes.
const (
	AxisX Axis = iota
	AxisY
)

// Event is a single relative motion report: a signed delta along one
// axis, stamped with the kernel event time.
type Event struct {
	Axis  Axis
	Delta int32
	Time  time.Time
}

// Info describes a candidate device. Immutable once enumerated.
type Info struct {
	Path string
	Name string
}

// Device is the interface that abstracts a pointing device.
type Device interface {
	// Lifecycle
	Open() error
	Close() error

	// Exclusive access. Ungrab must be safe to call on every exit
	// path, including after Close.
	Grab() error
	Ungrab() error

	// NextEvent blocks until the next relative motion event on the
	// X or Y axis arrives. It returns an error once the device is
	// closed, removed, or fails mid-read.
	NextEvent() (Event, error)

	// Device info
	Name() string
	Path() string
}
