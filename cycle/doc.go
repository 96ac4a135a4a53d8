// Package cycle grows Hamiltonian cycles of the square-sum graph one vertex at
// a time.
//
// What:
//
//   - State: a permutation of 1..n held as a sequence plus a vertex→position
//     index. Consecutive elements sum to a square (a Hamiltonian path); when
//     the first and last also do, the state is a Hamiltonian cycle.
//   - Seed: the known 32-vertex cycle every run starts from.
//   - Extend: turns an n-cycle into an (n+1)-path by rotating the cycle so a
//     random partner w of the new vertex n+1 comes first, then prefixing n+1.
//   - Perturber: closes such a path back into a cycle by randomized local
//     search. Each step first looks for a prefix reversal that closes the
//     cycle outright; failing that it reverses a random prefix or suffix at a
//     square-sum boundary.
//
// Why:
//
//	Every move keeps the path property, so the search only wanders among
//	Hamiltonian paths and stops as soon as one closes. Empirically a few dozen
//	steps suffice regardless of n, but nothing proves termination; the
//	attempt cap (Options.MaxAttempts) turns a non-closing search into an
//	explicit *ClosureError instead of an endless loop.
//
// Invariants:
//
//   - index[sequence[i]] == i for every i, after every mutation.
//   - ReversePrefix / ReverseSuffix repair only the positions they move.
//   - Canonical is defined only for cycles.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand owned by the Perturber.
//	Seed==0 selects a fixed default seed, so runs are reproducible unless a
//	caller injects its own source via WithRand.
//
// Complexity:
//
//   - New:            O(n)
//   - PositionOf:     O(1)
//   - Reverse*(at):   O(length reversed)
//   - Extend:         O(n) (fresh sequence and index)
//   - Step:           O(√n) candidate checks + O(length reversed)
//   - IsPath:         O(n); IsCycle: O(1)
//
// Errors:
//
//	ErrNotPermutation   - input is not a permutation of 1..n.
//	ErrNotPath          - some adjacent pair does not sum to a square.
//	ErrNotCycle         - first and last do not sum to a square.
//	ErrIndexOutOfRange  - reversal position outside the sequence.
//	ErrInvariant        - a move that must preserve or close the path did not.
//	ErrClosureFailed    - attempt cap exhausted (wrapped in *ClosureError).
package cycle
