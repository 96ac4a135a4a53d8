package cycle

// seedCycle is the smallest square-sum Hamiltonian cycle, n = 32, published
// by Landon Kryger. Every run grows from it.
var seedCycle = [...]int{
	1, 8, 28, 21, 4, 32, 17, 19, 30, 6, 3, 13, 12, 24, 25, 11,
	5, 31, 18, 7, 29, 20, 16, 9, 27, 22, 14, 2, 23, 26, 10, 15,
}

// SeedSize is the number of vertices of the seed cycle.
const SeedSize = len(seedCycle)

// Seed returns a fresh State holding the 32-vertex seed cycle.
func Seed() *State {
	s, err := New(seedCycle[:])
	if err != nil {
		// The literal is a fixed permutation; failing here is a build defect.
		panic(err)
	}

	return s
}
