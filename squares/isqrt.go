package squares

import "math"

// ISqrt returns ⌊√x⌋ for x ≥ 0 and 0 for negative x.
//
// The float estimate is corrected in both directions, so the result is exact
// for every x whose root fits in an int.
//
// Complexity: O(1).
func ISqrt(x int) int {
	if x <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}

	return r
}

// CeilSqrt returns ⌈√x⌉ for x ≥ 0 and 0 for negative x.
//
// Complexity: O(1).
func CeilSqrt(x int) int {
	r := ISqrt(x)
	if r*r < x {
		r++
	}

	return r
}

// IsSquare reports whether x is a perfect square k² with k ≥ 1.
//
// Complexity: O(1).
func IsSquare(x int) bool {
	if x < 1 {
		return false
	}
	r := ISqrt(x)

	return r*r == x
}
