package main

import (
	"context"
	"testing"
	"time"
)

func TestWaitForCaptureFullDuration(t *testing.T) {
	if interrupted := waitForCapture(context.Background(), 10*time.Millisecond); interrupted {
		t.Error("wait reported an interrupt without one")
	}
}

func TestWaitForCaptureInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if interrupted := waitForCapture(ctx, time.Hour); !interrupted {
		t.Error("cancelled context should interrupt the wait")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("interrupted wait took %v", elapsed)
	}
}
