package tracker

import (
	"sync"
	"time"
)

// Accumulator folds relative motion events into shared state. The
// consumption goroutine is the sole writer; any goroutine may read a
// snapshot concurrently. Implementations serialize all access with a
// single mutex and hold it O(1) per event.
type Accumulator interface {
	// Begin marks the start of a tracking session.
	Begin(t time.Time)

	// RecordX and RecordY fold one signed delta into the state.
	RecordX(delta int32, t time.Time)
	RecordY(delta int32, t time.Time)

	// Reset clears all state from previous sessions.
	Reset()
}

// Total accumulates the net horizontal displacement in raw counts.
// Vertical motion is ignored in this mode.
type Total struct {
	mu  sync.Mutex
	sum int64
}

// Begin is a no-op for the scalar variant.
func (a *Total) Begin(time.Time) {}

// RecordX adds a horizontal delta to the running total.
func (a *Total) RecordX(delta int32, _ time.Time) {
	a.mu.Lock()
	a.sum += int64(delta)
	a.mu.Unlock()
}

// RecordY ignores vertical motion.
func (a *Total) RecordY(int32, time.Time) {}

// Reset clears the running total.
func (a *Total) Reset() {
	a.mu.Lock()
	a.sum = 0
	a.mu.Unlock()
}

// Sum returns the net horizontal displacement observed so far.
func (a *Total) Sum() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sum
}

// Point is one entry of a recorded path: the cumulative position at
// the moment an event arrived.
type Point struct {
	Time time.Time
	X    int64
	Y    int64
}

// PathLog accumulates a timestamped path of cumulative positions.
// The first point of a session is the origin at start time; every
// later point is its predecessor shifted by one event's delta on one
// axis. Vertical deltas are sign-inverted so the Y axis points up.
type PathLog struct {
	mu     sync.Mutex
	points []Point
	x, y   int64
}

// Begin records the session origin.
func (a *PathLog) Begin(t time.Time) {
	a.mu.Lock()
	a.points = append(a.points, Point{Time: t, X: a.x, Y: a.y})
	a.mu.Unlock()
}

// RecordX folds a horizontal delta into the path.
func (a *PathLog) RecordX(delta int32, t time.Time) {
	a.mu.Lock()
	a.x += int64(delta)
	a.points = append(a.points, Point{Time: t, X: a.x, Y: a.y})
	a.mu.Unlock()
}

// RecordY folds a vertical delta into the path. Raw vertical deltas
// grow downward; the recorded position negates them.
func (a *PathLog) RecordY(delta int32, t time.Time) {
	a.mu.Lock()
	a.y += -int64(delta)
	a.points = append(a.points, Point{Time: t, X: a.x, Y: a.y})
	a.mu.Unlock()
}

// Reset clears the recorded path and the cumulative position.
func (a *PathLog) Reset() {
	a.mu.Lock()
	a.points = nil
	a.x, a.y = 0, 0
	a.mu.Unlock()
}

// Points returns a consistent copy of the recorded path.
func (a *PathLog) Points() []Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Point, len(a.points))
	copy(out, a.points)
	return out
}
