package squares

// Set is the set of perfect squares {k² : k ≥ 1, k² ≤ 2n−1} for a graph of
// size n. It is a value type: building one for a new n is O(1), so callers
// simply rebuild it whenever n changes.
type Set struct {
	n     int // graph size
	max   int // largest reachable sum 2n−1
	roots int // number of squares in the set (= ⌊√max⌋)
}

// NewSet returns the square set of an n-vertex square-sum graph.
// Returns ErrSizeTooSmall for n < 1.
//
// Complexity: O(1).
func NewSet(n int) (Set, error) {
	if n < 1 {
		return Set{}, ErrSizeTooSmall
	}
	max := 2*n - 1

	return Set{n: n, max: max, roots: ISqrt(max)}, nil
}

// N returns the graph size the set was built for.
func (s Set) N() int { return s.n }

// Max returns the largest sum covered by the set, 2n−1.
func (s Set) Max() int { return s.max }

// Len returns the number of squares in the set.
func (s Set) Len() int { return s.roots }

// Contains reports whether x is a perfect square in [1, 2n−1].
// For two distinct vertices a, b ≤ n, Contains(a+b) is the edge predicate.
//
// Complexity: O(1).
func (s Set) Contains(x int) bool {
	if x < 1 || x > s.max {
		return false
	}

	return IsSquare(x)
}

// Squares returns the members of the set in increasing order.
//
// Complexity: O(√n) time and space.
func (s Set) Squares() []int {
	out := make([]int, s.roots)
	var k int
	for k = 1; k <= s.roots; k++ {
		out[k-1] = k * k
	}

	return out
}
