package squares

import (
	"iter"
	"math/rand"
)

// Edges enumerates the square-sum neighbors of one vertex v in a graph of
// size n without materializing them.
//
// Raw index j ∈ [0, raw) maps to the square (base+j)², where base = ⌈√(v+1)⌉
// is the smallest root giving a neighbor ≥ 1 and base+raw−1 = ⌊√(v+n)⌋ the
// largest giving a neighbor ≤ n. When 2v is itself a square, the raw index of
// √(2v) would pair v with itself; that index is the hole and is skipped.
//
// The zero value has Len()==0. Edges holds no references and may be copied freely.
type Edges struct {
	v      int // source vertex
	n      int // graph size
	base   int // first square root, ⌈√(v+1)⌉
	length int // number of valid neighbors
	hole   int // raw index of the self pairing; == length when there is none
}

// NewEdges returns the neighbor enumerator of vertex v in the n-vertex graph.
// v == n is allowed: the newly inserted vertex of an extension step is
// handled by the same hole computation as any other vertex.
//
// Errors: ErrSizeTooSmall (n < 1), ErrVertexOutOfRange (v ∉ [1, n]).
//
// Complexity: O(1).
func NewEdges(v, n int) (Edges, error) {
	if n < 1 {
		return Edges{}, ErrSizeTooSmall
	}
	if v < 1 || v > n {
		return Edges{}, ErrVertexOutOfRange
	}

	base := CeilSqrt(v + 1)
	top := ISqrt(v + n)
	raw := top - base + 1
	if raw < 0 {
		raw = 0
	}

	e := Edges{v: v, n: n, base: base, length: raw, hole: raw}
	// 2v lies in [v+1, v+n] for every v ≥ 1, so a square 2v is always inside
	// the raw range and removes exactly one entry.
	if r := ISqrt(2 * v); r*r == 2*v {
		e.hole = r - base
		e.length = raw - 1
	}

	return e, nil
}

// Vertex returns the source vertex.
func (e Edges) Vertex() int { return e.v }

// N returns the graph size.
func (e Edges) N() int { return e.n }

// Len returns the number of square-sum neighbors of the source vertex.
func (e Edges) Len() int { return e.length }

// At returns the k-th neighbor, 0 ≤ k < Len(). Like slice indexing, k outside
// that range is a programming error; the result is then meaningless.
//
// Complexity: O(1).
func (e Edges) At(k int) int {
	if k >= e.hole {
		k++
	}
	r := e.base + k

	return r*r - e.v
}

// Random returns a uniformly chosen neighbor drawn from rng.
// Returns ErrIsolatedVertex when the vertex has no neighbor, which for a graph
// that admits a Hamiltonian path signals a broken invariant upstream.
//
// Complexity: O(1).
func (e Edges) Random(rng *rand.Rand) (int, error) {
	if e.length == 0 {
		return 0, ErrIsolatedVertex
	}

	return e.At(rng.Intn(e.length)), nil
}

// All yields the neighbors in enumeration order.
func (e Edges) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		var k int
		for k = 0; k < e.length; k++ {
			if !yield(e.At(k)) {
				return
			}
		}
	}
}
