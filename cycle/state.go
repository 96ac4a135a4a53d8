package cycle

import (
	"fmt"

	"github.com/katalvlaran/squaresum/squares"
)

// State is a permutation of 1..n with an O(1) vertex→position index.
//
// A State built by Seed or accepted by Close is a Hamiltonian cycle; a State
// returned by Extend is a Hamiltonian path awaiting Close. The State owns its
// sequence and index exclusively; accessors return copies.
type State struct {
	seq        []int       // vertices in path order
	index      []int       // index[v] = position of v in seq; index[0] unused
	set        squares.Set // edge predicate for n = len(seq)
	iterations int         // steps spent by the most recent Close
}

// New builds a State from an externally supplied sequence. The sequence must
// be a permutation of 1..n (n ≥ 1); whether it is a path or cycle is not
// required and can be queried with IsPath / IsCycle / Validate.
//
// The input slice is copied.
//
// Complexity: O(n) time and space.
func New(seq []int) (*State, error) {
	n := len(seq)
	if n < 1 {
		return nil, fmt.Errorf("%w: empty sequence", ErrNotPermutation)
	}
	s := &State{seq: make([]int, n)}
	copy(s.seq, seq)
	if err := s.rebuild(); err != nil {
		return nil, err
	}

	return s, nil
}

// rebuild recomputes the square set and the whole index from s.seq.
// Used only when the sequence is replaced wholesale.
func (s *State) rebuild() error {
	n := len(s.seq)
	set, err := squares.NewSet(n)
	if err != nil {
		return err
	}
	s.set = set
	s.index = make([]int, n+1)

	var (
		i int
		v int
	)
	for i = range s.index {
		s.index[i] = -1
	}
	for i, v = range s.seq {
		if v < 1 || v > n {
			return fmt.Errorf("%w: vertex %d outside [1,%d]", ErrNotPermutation, v, n)
		}
		if s.index[v] != -1 {
			return fmt.Errorf("%w: vertex %d repeated", ErrNotPermutation, v)
		}
		s.index[v] = i
	}

	return nil
}

// Len returns the number of vertices n.
func (s *State) Len() int { return len(s.seq) }

// At returns the vertex at position i, 0 ≤ i < Len().
func (s *State) At(i int) int { return s.seq[i] }

// First returns the vertex at position 0.
func (s *State) First() int { return s.seq[0] }

// Last returns the vertex at position Len()-1.
func (s *State) Last() int { return s.seq[len(s.seq)-1] }

// PositionOf returns the position of vertex v, or -1 if v ∉ [1, n].
//
// Complexity: O(1).
func (s *State) PositionOf(v int) int {
	if v < 1 || v >= len(s.index) {
		return -1
	}

	return s.index[v]
}

// Squares returns the edge predicate for this state's size.
func (s *State) Squares() squares.Set { return s.set }

// Edges returns the neighbor enumerator of v in this state's graph.
func (s *State) Edges(v int) (squares.Edges, error) {
	return squares.NewEdges(v, len(s.seq))
}

// Iterations returns the perturbation steps consumed by the most recent
// Close on this state (0 for a seed or a freshly extended path).
func (s *State) Iterations() int { return s.iterations }

// Sequence returns a copy of the vertex sequence.
func (s *State) Sequence() []int {
	out := make([]int, len(s.seq))
	copy(out, s.seq)

	return out
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c := &State{
		seq:        make([]int, len(s.seq)),
		index:      make([]int, len(s.index)),
		set:        s.set,
		iterations: s.iterations,
	}
	copy(c.seq, s.seq)
	copy(c.index, s.index)

	return c
}

// IsPath reports whether every adjacent pair sums to a perfect square.
// The permutation property is guaranteed by construction.
//
// Complexity: O(n).
func (s *State) IsPath() bool {
	return s.firstBrokenLink() == -1
}

// IsCycle reports whether the endpoints sum to a perfect square. Combined
// with IsPath this is the Hamiltonian-cycle property.
//
// Complexity: O(1).
func (s *State) IsCycle() bool {
	return s.set.Contains(s.seq[0] + s.seq[len(s.seq)-1])
}

// Validate checks the Hamiltonian-cycle property and the index invariant,
// returning ErrNotPath, ErrNotCycle or ErrInvariant with the offending position.
//
// Complexity: O(n).
func (s *State) Validate() error {
	var i int
	for i = range s.seq {
		if s.index[s.seq[i]] != i {
			return fmt.Errorf("%w: index[%d]=%d, want %d", ErrInvariant, s.seq[i], s.index[s.seq[i]], i)
		}
	}
	if i = s.firstBrokenLink(); i != -1 {
		return fmt.Errorf("%w: %d+%d at positions %d,%d", ErrNotPath, s.seq[i-1], s.seq[i], i-1, i)
	}
	if !s.IsCycle() {
		return fmt.Errorf("%w: %d+%d", ErrNotCycle, s.seq[0], s.seq[len(s.seq)-1])
	}

	return nil
}

// firstBrokenLink returns the first i ≥ 1 with seq[i-1]+seq[i] not a square,
// or -1 if there is none.
func (s *State) firstBrokenLink() int {
	var i int
	for i = 1; i < len(s.seq); i++ {
		if !s.set.Contains(s.seq[i-1] + s.seq[i]) {
			return i
		}
	}

	return -1
}

// Canonical returns the cycle rotated so vertex 1 comes first.
// Rotation preserves the cycle only when the state is one, so a non-path
// yields ErrNotPath and an open path ErrNotCycle.
//
// Complexity: O(n).
func (s *State) Canonical() ([]int, error) {
	if !s.IsPath() {
		return nil, ErrNotPath
	}
	if !s.IsCycle() {
		return nil, ErrNotCycle
	}

	return rotate(s.seq, s.index[1]), nil
}

// String renders the sequence for debugging.
func (s *State) String() string {
	return fmt.Sprint(s.seq)
}

// rotate returns a fresh slice seq[k:] ++ seq[:k].
func rotate(seq []int, k int) []int {
	out := make([]int, len(seq))
	copy(out, seq[k:])
	copy(out[len(seq)-k:], seq[:k])

	return out
}
