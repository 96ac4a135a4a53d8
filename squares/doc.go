// Package squares implements the arithmetic side of the square-sum graph:
// vertices are the integers 1..n and an edge joins u and v iff u+v is a
// perfect square.
//
// What:
//
//   - Set: the perfect squares in [1, 2n−1], i.e. every sum two distinct
//     vertices of an n-vertex graph can reach. Contains is the sole edge
//     predicate used by the rest of the module.
//   - Edges: the neighbors of one vertex, generated algebraically from
//     integer square roots instead of stored adjacency lists. The k-th
//     neighbor of v is (n0+k)² − v with n0 = ⌈√(v+1)⌉, skipping the single
//     index (the "hole") where (n0+k)² == 2v.
//   - ISqrt / CeilSqrt / IsSquare: exact integer square-root helpers.
//
// Why:
//
//   - Adjacency lists of the square-sum graph cost O(n√n) memory and must be
//     patched every time n grows. Edges is a small value type computed in O(1)
//     from (v, n), so graphs of hundreds of thousands of vertices need no
//     per-vertex storage at all.
//
// Ordering:
//
//	Edges yields neighbors in strictly increasing order of the square-root
//	index, which for a fixed v is also increasing neighbor value. The order is
//	fixed, so a seeded *rand.Rand reproduces every Random draw exactly.
//
// Complexity:
//
//   - NewSet, NewEdges:      O(1) time, O(1) memory
//   - Set.Contains:          O(1)
//   - Edges.At / Random:     O(1)
//   - Set.Squares:           O(√n) (allocates the list)
//
// Errors:
//
//	ErrSizeTooSmall      - n < 1.
//	ErrVertexOutOfRange  - v outside [1, n].
//	ErrIsolatedVertex    - Random on a vertex with no square-sum partner.
package squares
