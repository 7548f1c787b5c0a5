package tracker

import (
	"testing"
	"time"
)

func TestTotalSumsHorizontalDeltas(t *testing.T) {
	now := time.Now()
	acc := &Total{}
	acc.Begin(now)

	for _, d := range []int32{5, -2, 10} {
		acc.RecordX(d, now)
	}
	// Vertical motion does not contribute to the scalar total.
	acc.RecordY(100, now)

	if got := acc.Sum(); got != 13 {
		t.Errorf("Sum() = %d, want 13", got)
	}

	acc.Reset()
	if got := acc.Sum(); got != 0 {
		t.Errorf("Sum() after Reset = %d, want 0", got)
	}
}

func TestPathLogCumulativeInvariant(t *testing.T) {
	t0 := time.Now()
	acc := &PathLog{}
	acc.Begin(t0)
	acc.RecordX(3, t0.Add(10*time.Millisecond))
	acc.RecordY(4, t0.Add(20*time.Millisecond))

	points := acc.Points()
	want := []struct{ x, y int64 }{{0, 0}, {3, 0}, {3, -4}}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i, w := range want {
		if points[i].X != w.x || points[i].Y != w.y {
			t.Errorf("point %d = (%d, %d), want (%d, %d)", i, points[i].X, points[i].Y, w.x, w.y)
		}
	}
	for i := 1; i < len(points); i++ {
		if points[i].Time.Before(points[i-1].Time) {
			t.Errorf("timestamps not monotonic at point %d", i)
		}
	}
	if !points[0].Time.Equal(t0) {
		t.Errorf("first point not stamped with the session start time")
	}
}

func TestPathLogFinalPosition(t *testing.T) {
	t0 := time.Now()
	acc := &PathLog{}
	acc.Begin(t0)

	xs := []int32{4, -1, 7}
	ys := []int32{2, 9, -5}
	var sumX, sumY int64
	for i := range xs {
		acc.RecordX(xs[i], t0.Add(time.Duration(i)*time.Millisecond))
		acc.RecordY(ys[i], t0.Add(time.Duration(i)*time.Millisecond))
		sumX += int64(xs[i])
		sumY += int64(ys[i])
	}

	points := acc.Points()
	last := points[len(points)-1]
	if last.X != sumX {
		t.Errorf("final X = %d, want %d", last.X, sumX)
	}
	if last.Y != -sumY {
		t.Errorf("final Y = %d, want %d (negated vertical sum)", last.Y, -sumY)
	}

	// Each point differs from its predecessor on exactly one axis by
	// that event's delta.
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		if dx != 0 && dy != 0 {
			t.Errorf("point %d changed both axes at once", i)
		}
	}
}

func TestPathLogSnapshotIsCopy(t *testing.T) {
	t0 := time.Now()
	acc := &PathLog{}
	acc.Begin(t0)
	acc.RecordX(1, t0)

	snap := acc.Points()
	acc.RecordX(1, t0)
	if len(snap) != 2 {
		t.Errorf("snapshot grew with later writes: len = %d", len(snap))
	}
	snap[0].X = 99
	if acc.Points()[0].X == 99 {
		t.Error("mutating the snapshot leaked into the accumulator")
	}
}

func TestPathLogReset(t *testing.T) {
	t0 := time.Now()
	acc := &PathLog{}
	acc.Begin(t0)
	acc.RecordX(5, t0)
	acc.RecordY(5, t0)
	acc.Reset()

	if got := acc.Points(); len(got) != 0 {
		t.Fatalf("Points() after Reset has %d entries", len(got))
	}

	// A new session starts back at the origin.
	acc.Begin(t0)
	if p := acc.Points()[0]; p.X != 0 || p.Y != 0 {
		t.Errorf("new session origin = (%d, %d), want (0, 0)", p.X, p.Y)
	}
}
