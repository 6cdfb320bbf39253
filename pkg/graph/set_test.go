package graph

import (
	"slices"
	"testing"
)

func TestSet(t *testing.T) {
	s := make(Set[string])

	if s.Has("a") {
		t.Error("empty set reports membership")
	}

	s.Add("a")
	s.Add("b")
	s.Add("a") // duplicate

	if !s.Has("a") || !s.Has("b") {
		t.Error("missing added elements")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	vals := s.Values()
	slices.Sort(vals)
	if !slices.Equal(vals, []string{"a", "b"}) {
		t.Errorf("Values() = %v, want [a b]", vals)
	}

	s.Remove("a")
	if s.Has("a") {
		t.Error("removed element still present")
	}
	s.Remove("a") // removing twice is fine
}

func TestSetNilSafety(t *testing.T) {
	var s Set[int]

	if s.Has(1) {
		t.Error("nil set reports membership")
	}
	if got := s.Values(); len(got) != 0 {
		t.Errorf("nil set Values() = %v, want empty", got)
	}
}
