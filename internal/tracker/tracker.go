// Package tracker owns the event-tracking core: a lifecycle
// controller that runs a background consumption goroutine over an
// exclusively grabbed pointing device, folding relative motion events
// into a mutex-guarded accumulator.
package tracker

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"mousetrack/internal/device"
)

// State of the lifecycle controller.
type State int

// Controller states.
const (
	Idle State = iota
	Tracking
)

// DefaultGracePeriod bounds how long Stop waits for the consumption
// goroutine, first cooperatively and then again after force-closing
// the device to unblock a pending read.
const DefaultGracePeriod = time.Second

// Option configures a Tracker.
type Option func(*Tracker)

// WithGracePeriod overrides the shutdown grace period.
func WithGracePeriod(d time.Duration) Option {
	return func(t *Tracker) { t.grace = d }
}

// session is the state owned by one consumption goroutine. Every
// session carries its own stop flag and error slot so that a loop
// which outlives its grace period (stuck in a blocking read) can
// never fold events or errors into a later session.
type session struct {
	dev  device.Device
	acc  Accumulator
	done chan struct{}
	stop atomic.Bool

	mu  sync.Mutex
	err error
}

func (s *session) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Err returns the stream error that ended this session, if any.
func (s *session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// run is the background loop. It reads events in delivery order and
// folds them into the accumulator, checking the session stop flag
// between reads. The grab and the handle are released on every exit
// path.
func (s *session) run() {
	defer close(s.done)
	defer func() {
		s.dev.Ungrab()
		s.dev.Close()
	}()

	for {
		ev, err := s.dev.NextEvent()
		if err != nil {
			// A failed read during shutdown is the forced
			// unblock, not a device fault.
			if !s.stop.Load() {
				s.setErr(err)
				log.Printf("Tracking loop stopped by read error: %v", err)
			}
			return
		}
		if s.stop.Load() {
			return
		}
		switch ev.Axis {
		case device.AxisX:
			s.acc.RecordX(ev.Delta, ev.Time)
		case device.AxisY:
			s.acc.RecordY(ev.Delta, ev.Time)
		}
	}
}

// Tracker starts and stops tracking sessions. The controller
// goroutine never blocks on device I/O; only the consumption
// goroutine does, and Stop bounds its wait for that goroutine.
type Tracker struct {
	acc   Accumulator
	grace time.Duration

	mu    sync.Mutex
	state State
	sess  *session
}

// New creates a Tracker folding events into acc.
func New(acc Accumulator, opts ...Option) *Tracker {
	t := &Tracker{acc: acc, grace: DefaultGracePeriod}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current controller state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the stream error that ended the most recent session, if
// any. A session terminated by a mid-read failure keeps everything
// accumulated up to that point.
func (t *Tracker) Err() error {
	t.mu.Lock()
	s := t.sess
	t.mu.Unlock()
	if s == nil {
		return nil
	}
	return s.Err()
}

// Start opens and exclusively grabs dev, then spawns the consumption
// goroutine. The grab happens synchronously so a denied grab is
// reported here, before any event is consumed. Accumulated state from
// a previous session is cleared.
func (t *Tracker) Start(dev device.Device) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Tracking {
		return ErrAlreadyTracking
	}

	if err := dev.Open(); err != nil {
		return err
	}
	if err := dev.Grab(); err != nil {
		dev.Close()
		return err
	}

	t.acc.Reset()
	t.acc.Begin(time.Now())

	s := &session{
		dev:  dev,
		acc:  t.acc,
		done: make(chan struct{}),
	}
	t.sess = s
	t.state = Tracking
	go s.run()
	return nil
}

// Stop signals the consumption goroutine to exit and waits for it,
// bounded by the grace period. If the goroutine is still blocked in a
// read after the first wait, the device handle is force-closed to
// unblock it and Stop waits one more grace period. Stop on an Idle
// tracker is a no-op. The accumulated result stays readable either
// way. After a timeout the abandoned loop keeps its own, already
// tripped stop flag, so whenever its read finally returns it exits
// and releases the device without touching any later session.
func (t *Tracker) Stop() error {
	t.mu.Lock()
	if t.state != Tracking {
		t.mu.Unlock()
		return nil
	}
	s := t.sess
	t.mu.Unlock()

	s.stop.Store(true)

	timer := time.NewTimer(t.grace)
	defer timer.Stop()

	var timedOut bool
	select {
	case <-s.done:
	case <-timer.C:
		// The loop is stuck in a blocking read; closing the
		// handle makes the read return.
		s.dev.Close()
		timer.Reset(t.grace)
		select {
		case <-s.done:
		case <-timer.C:
			timedOut = true
		}
	}

	t.mu.Lock()
	t.state = Idle
	t.mu.Unlock()

	if timedOut {
		return ErrShutdownTimeout
	}
	return nil
}
