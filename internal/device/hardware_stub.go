//go:build !linux

package device

import "fmt"

// Hardware is a stub on non-Linux platforms.
type Hardware struct {
	info Info
}

// NewHardware creates a stub hardware device.
func NewHardware(info Info) *Hardware {
	return &Hardware{info: info}
}

// Open always fails on non-Linux platforms.
func (d *Hardware) Open() error {
	return fmt.Errorf("%w: evdev devices are only available on Linux", ErrUnavailable)
}

// Close is a no-op (stub).
func (d *Hardware) Close() error { return nil }

// Grab always fails (stub).
func (d *Hardware) Grab() error {
	return fmt.Errorf("%w: evdev devices are only available on Linux", ErrGrabFailed)
}

// Ungrab is a no-op (stub).
func (d *Hardware) Ungrab() error { return nil }

// NextEvent always fails (stub).
func (d *Hardware) NextEvent() (Event, error) {
	return Event{}, fmt.Errorf("%w: evdev devices are only available on Linux", ErrUnavailable)
}

// Name returns the enumerated device name.
func (d *Hardware) Name() string { return d.info.Name }

// Path returns the device node path.
func (d *Hardware) Path() string { return d.info.Path }

// List finds nothing on non-Linux platforms.
func List() []Info {
	return nil
}
