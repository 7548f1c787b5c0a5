package device

import (
	"io"
	"sync"
)

// Fake is a scripted in-memory Device for tests. Events are pushed
// with Emit and consumed by NextEvent; Close unblocks a pending read
// with io.EOF, mirroring how closing an evdev node unblocks read(2).
type Fake struct {
	info Info

	events chan Event
	closed chan struct{}

	mu         sync.Mutex
	open       bool
	grabbed    bool
	closeOnce  sync.Once
	failErr    error
	grabDenied bool

	// IgnoreClose keeps NextEvent blocked even after Close, to
	// simulate a read the controller cannot unblock.
	IgnoreClose bool

	// Counters for asserting lifecycle symmetry.
	Grabs   int
	Ungrabs int
}

// NewFake creates a fake device.
func NewFake(info Info) *Fake {
	return &Fake{
		info:   info,
		events: make(chan Event),
		closed: make(chan struct{}),
	}
}

// DenyGrab makes the next Grab fail, as if another process held the
// exclusive grab.
func (f *Fake) DenyGrab() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grabDenied = true
}

// FailNext makes the next NextEvent return err, simulating a
// mid-tracking stream failure such as an unplugged device.
func (f *Fake) FailNext(err error) {
	f.mu.Lock()
	f.failErr = err
	f.mu.Unlock()
	// Wake a blocked reader.
	select {
	case f.events <- Event{}:
	case <-f.closed:
	}
}

// Emit delivers one event to a blocked NextEvent caller.
func (f *Fake) Emit(ev Event) {
	select {
	case f.events <- ev:
	case <-f.closed:
	}
}

// Open marks the device open.
func (f *Fake) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	return nil
}

// Close unblocks any pending NextEvent (unless IgnoreClose is set)
// and marks the device closed.
func (f *Fake) Close() error {
	f.mu.Lock()
	f.open = false
	ignore := f.IgnoreClose
	f.mu.Unlock()
	if !ignore {
		f.closeOnce.Do(func() { close(f.closed) })
	}
	return nil
}

// Grab acquires the scripted exclusive grab.
func (f *Fake) Grab() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.grabDenied {
		f.grabDenied = false
		return ErrGrabFailed
	}
	if f.grabbed {
		return ErrGrabFailed
	}
	f.grabbed = true
	f.Grabs++
	return nil
}

// Ungrab releases the scripted grab. Idempotent.
func (f *Fake) Ungrab() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.grabbed {
		return nil
	}
	f.grabbed = false
	f.Ungrabs++
	return nil
}

// Grabbed reports whether the grab is currently held.
func (f *Fake) Grabbed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grabbed
}

// NextEvent blocks until an event is emitted or the device closes.
func (f *Fake) NextEvent() (Event, error) {
	select {
	case ev := <-f.events:
		f.mu.Lock()
		err := f.failErr
		f.failErr = nil
		f.mu.Unlock()
		if err != nil {
			return Event{}, err
		}
		return ev, nil
	case <-f.closed:
		return Event{}, io.EOF
	}
}

// Name returns the scripted device name.
func (f *Fake) Name() string { return f.info.Name }

// Path returns the scripted device path.
func (f *Fake) Path() string { return f.info.Path }
