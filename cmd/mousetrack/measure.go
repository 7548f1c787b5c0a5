package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"mousetrack/internal/config"
	"mousetrack/internal/console"
	"mousetrack/internal/device"
	"mousetrack/internal/tracker"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure net horizontal travel between two space-bar presses",
	RunE:  runMeasure,
}

func runMeasure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	info, err := chooseDevice(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Using mouse: %s at %s\n", info.Name, info.Path)

	total := &tracker.Total{}
	trk := tracker.New(total, tracker.WithGracePeriod(cfg.Tracking.GracePeriod()))

	fmt.Println("\nPress the SPACE bar to start measuring mouse movement in the x-direction.")
	if err := console.WaitForKey(' '); err != nil {
		return err
	}

	if err := trk.Start(device.NewHardware(info)); err != nil {
		return fmt.Errorf("starting tracking: %w", err)
	}
	fmt.Println("Measurement started. Press the SPACE bar again to stop measuring.")

	if err := console.WaitForKey(' '); err != nil && !errors.Is(err, console.ErrInterrupted) {
		log.Printf("Stopping after input error: %v", err)
	}

	if err := trk.Stop(); errors.Is(err, tracker.ErrShutdownTimeout) {
		log.Printf("Warning: %v", err)
	} else if err != nil {
		return err
	}
	fmt.Println("Measurement stopped.")

	if serr := trk.Err(); serr != nil {
		log.Printf("Tracking ended early (%v); the total covers events up to that point.", serr)
	}

	fmt.Printf("\nTotal counts moved by the mouse in the x-direction: %d\n", total.Sum())
	return nil
}
