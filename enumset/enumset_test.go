package enumset

import (
	"reflect"
	"testing"
)

type weekday int

const (
	monday weekday = iota
	tuesday
	wednesday
	thursday
	friday
	saturday
	sunday
	numWeekdays
)

func TestInsertEraseContains(t *testing.T) {
	s := New[weekday](int(numWeekdays))

	s.Insert(monday)
	s.Insert(friday)
	s.Insert(friday) // duplicate, no effect

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(monday) || !s.Contains(friday) || s.Contains(sunday) {
		t.Fatalf("membership wrong: %v", s.Values())
	}

	s.Erase(monday)
	s.Erase(monday) // already gone, no effect
	if s.Len() != 1 || s.Contains(monday) {
		t.Fatalf("after Erase: len=%d", s.Len())
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	s := New[int](8)

	s.Insert(-1)
	s.Insert(8)
	s.Insert(1000)
	if s.Len() != 0 {
		t.Fatalf("out-of-range Insert changed the set: %v", s.Values())
	}
	if s.Contains(-1) || s.Contains(8) {
		t.Fatal("out-of-range Contains reported true")
	}
	s.Erase(-1) // must not panic
}

func TestIterationOrder(t *testing.T) {
	// Spread values across word boundaries.
	s := New[int](200)
	for _, v := range []int{199, 0, 64, 63, 128, 5} {
		s.Insert(v)
	}

	want := []int{0, 5, 63, 64, 128, 199}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	var visited []int
	s.ForEach(func(v int) { visited = append(visited, v) })
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("ForEach order = %v, want %v", visited, want)
	}
}

func TestClear(t *testing.T) {
	s := New[uint8](16)
	s.Insert(3)
	s.Insert(9)
	s.Clear()

	if s.Len() != 0 || s.Contains(3) {
		t.Fatalf("Clear left members behind: %v", s.Values())
	}
}
