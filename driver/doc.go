// Package driver runs the grow loop: starting from the seed cycle it
// repeatedly extends by one vertex and closes the path again, reporting
// checkpoints at milestone sizes until a size ceiling is reached.
//
// A Driver owns its current cycle, its random stream (through a
// cycle.Perturber) and its termination rule; there is no package state.
//
// Checkpoints go to a Reporter. TextReporter prints
//
//	<RFC3339 time> <size> <iterations> [v1 v2 ... vn]
//
// per checkpoint, JSONReporter one JSON object per line. Progress and
// failures are logged with charmbracelet/log; Metrics exposes the same
// progress to Prometheus.
package driver
