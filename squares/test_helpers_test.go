package squares_test

// bruteNeighbors lists every w ∈ [1, n], w ≠ v, with v+w a perfect square,
// by direct scan. It is the reference the enumerator is checked against.
func bruteNeighbors(v, n int) []int {
	var (
		out []int
		w   int
		r   int
	)
	for w = 1; w <= n; w++ {
		if w == v {
			continue
		}
		for r = 1; r*r <= v+w; r++ {
			if r*r == v+w {
				out = append(out, w)
				break
			}
		}
	}

	return out
}

// collect drains an enumerator through At.
func collect(e interface {
	Len() int
	At(int) int
}) []int {
	out := make([]int, 0, e.Len())
	var k int
	for k = 0; k < e.Len(); k++ {
		out = append(out, e.At(k))
	}

	return out
}
