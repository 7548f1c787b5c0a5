// Package console provides the interactive collaborators of the
// tracker: numbered device selection, raw-mode keypress waits, and
// the pre-capture countdown.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"mousetrack/internal/device"
)

// ErrInterrupted is returned when the operator presses Ctrl-C while
// the terminal is in raw mode.
var ErrInterrupted = errors.New("interrupted")

// SelectDevice prints a numbered list of candidates to out and reads
// a selection from in, re-prompting until the input is a number in
// [1, len(candidates)].
func SelectDevice(in io.Reader, out io.Writer, candidates []device.Info) (device.Info, error) {
	if len(candidates) == 0 {
		return device.Info{}, errors.New("no devices to select from")
	}

	fmt.Fprintln(out, "Available mouse devices:")
	for i, c := range candidates {
		fmt.Fprintf(out, "  %d: %s (%s)\n", i+1, c.Name, c.Path)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Please select a mouse by number: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return device.Info{}, err
			}
			return device.Info{}, io.ErrUnexpectedEOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "That is not a valid number. Please try again.")
			continue
		}
		if n < 1 || n > len(candidates) {
			fmt.Fprintf(out, "Invalid number. Please enter a number between 1 and %d.\n", len(candidates))
			continue
		}
		return candidates[n-1], nil
	}
}

// WaitForKey puts stdin into raw mode and blocks until the operator
// presses want. Ctrl-C returns ErrInterrupted so the caller can still
// clean up.
func WaitForKey(want byte) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, old)

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return err
		}
		switch buf[0] {
		case want:
			return nil
		case 0x03: // ETX, Ctrl-C in raw mode
			return ErrInterrupted
		}
	}
}

// Countdown prints a once-per-second countdown from seconds to 1.
func Countdown(out io.Writer, seconds int) {
	for i := seconds; i > 0; i-- {
		fmt.Fprintf(out, "%d...\n", i)
		time.Sleep(time.Second)
	}
}
