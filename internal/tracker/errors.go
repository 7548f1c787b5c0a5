package tracker

import "errors"

var (
	// ErrAlreadyTracking is returned by Start while a session is
	// running.
	ErrAlreadyTracking = errors.New("tracking is already in progress")

	// ErrShutdownTimeout is returned by Stop when the consumption
	// goroutine failed to exit within the grace period, even after
	// the device handle was force-closed to unblock it.
	ErrShutdownTimeout = errors.New("tracking loop did not stop within the grace period")
)
