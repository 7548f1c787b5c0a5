package evdev

import (
	"reflect"
	"testing"
)

func TestSortByEventNumber(t *testing.T) {
	paths := []string{
		"/dev/input/event10",
		"/dev/input/event2",
		"/dev/input/event1",
		"/dev/input/event21",
	}
	sortByEventNumber(paths)

	want := []string{
		"/dev/input/event1",
		"/dev/input/event2",
		"/dev/input/event10",
		"/dev/input/event21",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("sorted order = %v, want %v", paths, want)
	}
}

func TestSortByEventNumberUnparseableLast(t *testing.T) {
	paths := []string{
		"/dev/input/mice",
		"/dev/input/event3",
		"/dev/input/event11",
	}
	sortByEventNumber(paths)

	want := []string{
		"/dev/input/event3",
		"/dev/input/event11",
		"/dev/input/mice",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("sorted order = %v, want %v", paths, want)
	}
}
