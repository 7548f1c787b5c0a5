//go:build linux

package device

import (
	"fmt"
	"sync"

	"mousetrack/internal/evdev"
)

// Hardware wraps an evdev handle to implement the Device interface.
type Hardware struct {
	info Info

	mu      sync.Mutex
	h       *evdev.Handle
	grabbed bool
}

// NewHardware creates a hardware device for the given descriptor. No
// I/O happens until Open.
func NewHardware(info Info) *Hardware {
	return &Hardware{info: info}
}

// Open opens the underlying device node.
func (d *Hardware) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.h != nil {
		return nil
	}
	h, err := evdev.Open(d.info.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, d.info.Path, err)
	}
	d.h = h
	return nil
}

// Close releases the device node and unblocks a pending NextEvent.
// Closing an already-closed device is a no-op.
func (d *Hardware) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.h == nil {
		return nil
	}
	err := d.h.Close()
	d.h = nil
	d.grabbed = false
	return err
}

// Grab acquires exclusive event delivery.
func (d *Hardware) Grab() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.h == nil {
		return fmt.Errorf("%w: %s: not open", ErrUnavailable, d.info.Path)
	}
	if d.grabbed {
		return nil
	}
	if err := d.h.Grab(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrGrabFailed, d.info.Path, err)
	}
	d.grabbed = true
	return nil
}

// Ungrab releases exclusive access. Idempotent, and safe after Close
// since closing the node drops the kernel grab with it.
func (d *Hardware) Ungrab() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.h == nil || !d.grabbed {
		return nil
	}
	d.grabbed = false
	return d.h.Ungrab()
}

// NextEvent blocks until the next relative X/Y motion event. Other
// event types (sync reports, button presses, wheel motion) are read
// and discarded.
func (d *Hardware) NextEvent() (Event, error) {
	d.mu.Lock()
	h := d.h
	d.mu.Unlock()
	if h == nil {
		return Event{}, fmt.Errorf("%w: %s: not open", ErrUnavailable, d.info.Path)
	}
	for {
		raw, err := h.NextEvent()
		if err != nil {
			return Event{}, err
		}
		if raw.Type != evdev.EV_REL {
			continue
		}
		switch raw.Code {
		case evdev.REL_X:
			return Event{Axis: AxisX, Delta: raw.Value, Time: raw.Time}, nil
		case evdev.REL_Y:
			return Event{Axis: AxisY, Delta: raw.Value, Time: raw.Time}, nil
		}
	}
}

// Name returns the enumerated device name.
func (d *Hardware) Name() string {
	return d.info.Name
}

// Path returns the device node path.
func (d *Hardware) Path() string {
	return d.info.Path
}

// List returns the mouse-like devices currently present.
func List() []Info {
	var infos []Info
	for _, di := range evdev.Enumerate() {
		infos = append(infos, Info{Path: di.Path, Name: di.Name})
	}
	return infos
}
