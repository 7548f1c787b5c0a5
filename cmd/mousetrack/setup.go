package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mousetrack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: write the config file",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== Mousetrack Setup ===")
	fmt.Println()

	// Load existing config as defaults
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println("-- Device --")
	cfg.Device.Path = prompt(reader, "Device path (empty to select interactively each run)", cfg.Device.Path)

	fmt.Println()
	fmt.Println("-- Tracking --")
	cfg.Tracking.RecordSeconds = promptInt(reader, "Record duration (seconds)", cfg.Tracking.RecordSeconds)
	cfg.Tracking.CountdownSeconds = promptInt(reader, "Countdown (seconds)", cfg.Tracking.CountdownSeconds)

	fmt.Println()
	fmt.Println("-- Plot --")
	cfg.Plot.Output = prompt(reader, "Plot output path", cfg.Plot.Output)

	fmt.Println()
	if err := config.WriteConfigFile(cfg); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Printf("Config written to %s\n", config.DefaultConfigPath())
	fmt.Println("Setup complete!")
	return nil
}

// prompt asks for a value with an optional default.
func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return line
}

// promptInt asks for an integer value, keeping the default on blank
// or non-numeric input.
func promptInt(reader *bufio.Reader, label string, defaultVal int) int {
	line := prompt(reader, label, strconv.Itoa(defaultVal))
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
