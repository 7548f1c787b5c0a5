//go:build linux

package evdev

import (
	"path/filepath"
)

// Enumerate scans /dev/input for event nodes that look like mice:
// devices advertising relative motion on both axes. Nodes that cannot
// be opened or queried (permissions, busy, transient I/O errors) are
// skipped. An unreadable namespace yields an empty list, not an
// error.
func Enumerate() []DeviceInfo {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil
	}
	sortByEventNumber(matches)

	var found []DeviceInfo
	for _, path := range matches {
		h, err := Open(path)
		if err != nil {
			continue
		}
		ok, err := h.HasRelXY()
		if err != nil || !ok {
			h.Close()
			continue
		}
		name, err := h.Name()
		h.Close()
		if err != nil {
			continue
		}
		found = append(found, DeviceInfo{Path: path, Name: name})
	}
	return found
}
