// Package squaresum grows Hamiltonian cycles of the square-sum graph.
//
// The square-sum graph on 1..n joins u and v whenever u+v is a perfect
// square. Starting from the known 32-vertex cycle, the packages below extend
// a cycle one vertex at a time: vertex n+1 is spliced next to one of its
// square partners, which leaves a Hamiltonian path, and randomized prefix
// and suffix reversals then close that path back into a cycle.
//
// Layout:
//
//	squares/        perfect squares up to 2n and the neighbor sets of the graph
//	cycle/          the path/cycle State, reversals, extension and the Perturber
//	driver/         the grow loop with milestones, reporters and metrics
//	internal/cli/   the squaresum command (run, seed, verify)
//	cmd/squaresum/  the binary entry point
//
// Quick start:
//
//	p := cycle.NewPerturber(cycle.WithSeed(7))
//	next, err := p.Extend(cycle.Seed())
//	if err == nil {
//		err = p.Close(next, 0)
//	}
//	fmt.Println(next.Len(), next.IsCycle()) // 33 true
package squaresum
