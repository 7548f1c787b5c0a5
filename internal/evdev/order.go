package evdev

import (
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// sortByEventNumber orders event node paths by their numeric suffix,
// so event2 sorts before event10. Paths without a parseable suffix
// sort last, in lexical order among themselves.
func sortByEventNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		ni, nj := eventNumber(paths[i]), eventNumber(paths[j])
		if ni != nj {
			return ni < nj
		}
		return paths[i] < paths[j]
	})
}

func eventNumber(path string) int {
	suffix := strings.TrimPrefix(filepath.Base(path), "event")
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return math.MaxInt
	}
	return n
}
