package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mousetrack/internal/config"
	"mousetrack/internal/console"
	"mousetrack/internal/device"
)

var rootCmd = &cobra.Command{
	Use:           "mousetrack",
	Short:         "Track raw relative motion from a pointing device",
	Long:          "mousetrack grabs a Linux input device exclusively and accumulates its raw relative motion events, either as a net horizontal total or as a timestamped path rendered to a plot.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Ctrl-C and SIGTERM cancel the command context so a running
	// capture still stops the tracker and releases the grab.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(devicesCmd, measureCmd, recordCmd, setupCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// chooseDevice enumerates mouse-like devices and resolves one, either
// from the configured path or interactively.
func chooseDevice(cfg *config.Config) (device.Info, error) {
	candidates := device.List()
	if len(candidates) == 0 {
		if os.Geteuid() != 0 {
			return device.Info{}, fmt.Errorf("no mouse devices could be found; reading /dev/input usually requires root, try re-running with sudo")
		}
		return device.Info{}, fmt.Errorf("no mouse devices could be found")
	}

	if cfg.Device.Path != "" {
		for _, c := range candidates {
			if c.Path == cfg.Device.Path {
				return c, nil
			}
		}
		fmt.Printf("Configured device %s is not available, falling back to selection.\n", cfg.Device.Path)
	}

	return console.SelectDevice(os.Stdin, os.Stdout, candidates)
}
