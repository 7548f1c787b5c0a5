package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mousetrack/internal/config"
	"mousetrack/internal/console"
	"mousetrack/internal/device"
	"mousetrack/internal/plot"
	"mousetrack/internal/tracker"
)

var (
	recordDuration int
	recordOutput   string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record the mouse path for a fixed duration and render a plot",
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().IntVar(&recordDuration, "duration", 0, "capture duration in seconds (overrides config)")
	recordCmd.Flags().StringVar(&recordOutput, "output", "", "plot output path (overrides config)")
}

// waitForCapture blocks for the capture duration or until ctx is
// cancelled, reporting whether the wait was interrupted.
func waitForCapture(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return false
	case <-ctx.Done():
		return true
	}
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if recordDuration > 0 {
		cfg.Tracking.RecordSeconds = recordDuration
	}
	if recordOutput != "" {
		cfg.Plot.Output = recordOutput
	}

	info, err := chooseDevice(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Using mouse: %s at %s\n", info.Name, info.Path)

	path := &tracker.PathLog{}
	trk := tracker.New(path, tracker.WithGracePeriod(cfg.Tracking.GracePeriod()))

	fmt.Println("\nPrepare to track mouse movement. Starting in...")
	console.Countdown(cmd.OutOrStdout(), cfg.Tracking.CountdownSeconds)

	if err := trk.Start(device.NewHardware(info)); err != nil {
		return fmt.Errorf("starting tracking: %w", err)
	}
	fmt.Println("Start tracking!")

	if waitForCapture(cmd.Context(), time.Duration(cfg.Tracking.RecordSeconds)*time.Second) {
		fmt.Println("\nInterrupted, stopping early.")
	}

	if err := trk.Stop(); errors.Is(err, tracker.ErrShutdownTimeout) {
		log.Printf("Warning: %v", err)
	} else if err != nil {
		return err
	}
	fmt.Println("Tracking stopped.")

	if serr := trk.Err(); serr != nil {
		log.Printf("Tracking ended early (%v); plotting the path recorded up to that point.", serr)
	}

	points := path.Points()
	opts := plot.Options{Width: cfg.Plot.Width, Height: cfg.Plot.Height}

	if cfg.Plot.KeepSVG {
		svgPath := strings.TrimSuffix(cfg.Plot.Output, ".png") + ".svg"
		if err := plot.WriteSVG(svgPath, points, opts); err != nil && !errors.Is(err, plot.ErrNotEnoughData) {
			log.Printf("Warning: writing %s: %v", svgPath, err)
		}
	}

	if err := plot.WritePNG(cfg.Plot.Output, points, opts); err != nil {
		if errors.Is(err, plot.ErrNotEnoughData) {
			fmt.Println("Not enough data points were recorded to generate a plot.")
			return nil
		}
		return err
	}

	fmt.Printf("Plot written to %s (%d events).\n", cfg.Plot.Output, len(points)-1)
	return nil
}
