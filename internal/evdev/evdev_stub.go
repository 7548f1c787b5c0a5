//go:build !linux

package evdev

import "errors"

// ErrNotSupported is returned on platforms without evdev.
var ErrNotSupported = errors.New("evdev input devices are only available on Linux")

// Handle is a stub on non-Linux platforms.
type Handle struct{}

// Open always fails on non-Linux platforms.
func Open(path string) (*Handle, error) {
	return nil, ErrNotSupported
}

// Path returns an empty path (stub).
func (h *Handle) Path() string { return "" }

// Name always fails (stub).
func (h *Handle) Name() (string, error) { return "", ErrNotSupported }

// HasRelXY always fails (stub).
func (h *Handle) HasRelXY() (bool, error) { return false, ErrNotSupported }

// Grab always fails (stub).
func (h *Handle) Grab() error { return ErrNotSupported }

// Ungrab is a no-op (stub).
func (h *Handle) Ungrab() error { return nil }

// NextEvent always fails (stub).
func (h *Handle) NextEvent() (Event, error) { return Event{}, ErrNotSupported }

// Close is a no-op (stub).
func (h *Handle) Close() error { return nil }

// Enumerate finds nothing on non-Linux platforms.
func Enumerate() []DeviceInfo {
	return nil
}
