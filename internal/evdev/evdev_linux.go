//go:build linux

package evdev

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Handle is an open evdev device node.
type Handle struct {
	f    *os.File
	path string
}

// Open opens an input device node read-only.
func Open(path string) (*Handle, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &Handle{f: f, path: path}, nil
}

// Path returns the device node path.
func (h *Handle) Path() string {
	return h.path
}

// Name returns the device name reported by the kernel.
func (h *Handle) Name() (string, error) {
	buf := make([]byte, 256)
	if err := h.ioctlRead(eviocgname(len(buf)), buf); err != nil {
		return "", fmt.Errorf("EVIOCGNAME %s: %w", h.path, err)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// HasRelXY reports whether the device advertises relative motion on
// both the X and Y axes.
func (h *Handle) HasRelXY() (bool, error) {
	// Does the device emit EV_REL at all?
	evMask := make([]byte, EV_MAX/8+1)
	if err := h.ioctlRead(eviocgbit(0, len(evMask)), evMask); err != nil {
		return false, fmt.Errorf("EVIOCGBIT %s: %w", h.path, err)
	}
	if !hasBit(evMask, EV_REL) {
		return false, nil
	}

	relMask := make([]byte, REL_MAX/8+1)
	if err := h.ioctlRead(eviocgbit(EV_REL, len(relMask)), relMask); err != nil {
		return false, fmt.Errorf("EVIOCGBIT EV_REL %s: %w", h.path, err)
	}
	return hasBit(relMask, REL_X) && hasBit(relMask, REL_Y), nil
}

// Grab requests exclusive event delivery for this handle. While held,
// no other process receives events from the device.
func (h *Handle) Grab() error {
	if err := unix.IoctlSetInt(int(h.f.Fd()), eviocgrab(), 1); err != nil {
		return fmt.Errorf("EVIOCGRAB %s: %w", h.path, err)
	}
	return nil
}

// Ungrab releases an exclusive grab. Releasing a handle that is not
// grabbed is harmless.
func (h *Handle) Ungrab() error {
	// EINVAL here means the grab was already released.
	if err := unix.IoctlSetInt(int(h.f.Fd()), eviocgrab(), 0); err != nil && err != unix.EINVAL {
		return fmt.Errorf("EVIOCGRAB release %s: %w", h.path, err)
	}
	return nil
}

// NextEvent blocks until the next input_event arrives and returns it
// decoded. A concurrent Close unblocks the read, which then reports
// os.ErrClosed. A removed device reports io.EOF or ENODEV.
func (h *Handle) NextEvent() (Event, error) {
	buf := make([]byte, eventSize64)
	if _, err := io.ReadFull(h.f, buf); err != nil {
		return Event{}, err
	}
	return decodeEvent(buf)
}

// Close closes the device node and unblocks any pending NextEvent.
func (h *Handle) Close() error {
	return h.f.Close()
}

func (h *Handle) ioctlRead(req uint, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, h.f.Fd(), uintptr(req), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}
