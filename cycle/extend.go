package cycle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/squaresum/squares"
)

// Extend derives an (n+1)-vertex Hamiltonian path from the n-vertex cycle prev.
//
// Steps:
//  1. Draw w uniformly among the square-sum partners of the new vertex n+1.
//  2. Rotate prev so w comes first (any rotation of a cycle is a path).
//  3. Prefix n+1, which is adjacent to w.
//
// The result satisfies IsPath; its far boundary (old predecessor of w, n+1)
// is generally broken and is repaired by Perturber.Close. prev is not modified.
// A nil rng selects the default deterministic stream.
//
// Errors: ErrNotCycle if prev is open; ErrIsolatedVertex (wrapped) if n+1
// has no partner, which contradicts the existence of prev.
//
// Complexity: O(n).
func Extend(prev *State, rng *rand.Rand) (*State, error) {
	if !prev.IsCycle() {
		return nil, fmt.Errorf("cycle: extend size %d: %w", prev.Len(), ErrNotCycle)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	n := prev.Len() + 1
	edges, err := squares.NewEdges(n, n)
	if err != nil {
		return nil, fmt.Errorf("cycle: extend to %d: %w", n, err)
	}
	w, err := edges.Random(rng)
	if err != nil {
		return nil, fmt.Errorf("cycle: extend to %d: %w", n, err)
	}
	k := prev.index[w]

	next := &State{seq: make([]int, n)}
	next.seq[0] = n
	copy(next.seq[1:], prev.seq[k:])
	copy(next.seq[n-k:], prev.seq[:k])
	if err = next.rebuild(); err != nil {
		return nil, fmt.Errorf("%w: extend produced a bad sequence: %v", ErrInvariant, err)
	}

	return next, nil
}
