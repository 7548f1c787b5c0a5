package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mousetrack/internal/device"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List input devices with two-axis relative motion",
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	candidates := device.List()
	if len(candidates) == 0 {
		fmt.Println("No mouse devices found.")
		if os.Geteuid() != 0 {
			fmt.Println("Reading /dev/input usually requires root; try re-running with sudo.")
		}
		return nil
	}

	fmt.Println("Available mouse devices:")
	fmt.Println("------------------------")
	for _, c := range candidates {
		fmt.Printf("  %s\n", c.Name)
		fmt.Printf("    Path: %s\n", c.Path)
	}
	return nil
}
