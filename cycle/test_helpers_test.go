// Package cycle_test holds shared fixtures for the cycle tests.
package cycle_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/squaresum/cycle"
)

const (
	// seedDet is the deterministic seed used by scenario tests.
	seedDet = int64(42)

	// growTo bounds the longer growth scenarios; small enough for CI.
	growTo = 128
)

// seedLiteral mirrors the published 32-vertex cycle.
var seedLiteral = []int{
	1, 8, 28, 21, 4, 32, 17, 19, 30, 6, 3, 13, 12, 24, 25, 11,
	5, 31, 18, 7, 29, 20, 16, 9, 27, 22, 14, 2, 23, 26, 10, 15,
}

// path15 is a square-sum Hamiltonian path on 1..15. No Hamiltonian cycle
// exists below 32 vertices, so no perturbation can ever close it.
var path15 = []int{8, 1, 15, 10, 6, 3, 13, 12, 4, 5, 11, 14, 2, 7, 9}

// Repeat runs fn n times, used to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustState builds a State or fails the test.
func mustState(t *testing.T, seq []int) *cycle.State {
	t.Helper()
	s, err := cycle.New(seq)
	if err != nil {
		t.Fatalf("New(%v): %v", seq, err)
	}
	return s
}

// indexConsistent reports whether PositionOf agrees with At for every position.
func indexConsistent(s *cycle.State) bool {
	var i int
	for i = 0; i < s.Len(); i++ {
		if s.PositionOf(s.At(i)) != i {
			return false
		}
	}
	return true
}

// isPermutation reports whether seq holds exactly 1..len(seq).
func isPermutation(seq []int) bool {
	sorted := slices.Sorted(slices.Values(seq))
	var i int
	for i = range sorted {
		if sorted[i] != i+1 {
			return false
		}
	}
	return true
}

// isRotation reports whether b is a cyclic rotation of a (same direction).
func isRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	p := slices.Index(b, a[0])
	if p < 0 {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[(p+i)%len(b)] {
			return false
		}
	}
	return true
}

// grow extends and closes from the seed up to size n, checking each cycle.
func grow(t *testing.T, p *cycle.Perturber, n int) *cycle.State {
	t.Helper()
	s := cycle.Seed()
	for s.Len() < n {
		next, err := p.Extend(s)
		if err != nil {
			t.Fatalf("Extend(%d): %v", s.Len(), err)
		}
		if err = p.Close(next, 0); err != nil {
			t.Fatalf("Close(%d): %v", next.Len(), err)
		}
		if err = next.Validate(); err != nil {
			t.Fatalf("size %d not a cycle: %v", next.Len(), err)
		}
		s = next
	}
	return s
}
