package cycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for cycle operations.
var (
	// ErrNotPermutation indicates a sequence that is not a permutation of 1..n.
	ErrNotPermutation = errors.New("cycle: sequence is not a permutation of 1..n")

	// ErrNotPath indicates an adjacent pair whose sum is not a perfect square.
	ErrNotPath = errors.New("cycle: sequence is not a square-sum path")

	// ErrNotCycle indicates a path whose endpoints do not sum to a perfect square.
	ErrNotCycle = errors.New("cycle: path is not closed")

	// ErrIndexOutOfRange indicates a reversal position outside the sequence.
	ErrIndexOutOfRange = errors.New("cycle: position out of range")

	// ErrInvariant indicates a structural move broke an invariant it must keep.
	// It always points at a logic defect, never at bad luck.
	ErrInvariant = errors.New("cycle: invariant violated")

	// ErrClosureFailed indicates the perturbation search hit its attempt cap.
	ErrClosureFailed = errors.New("cycle: failed to close path")
)

// ClosureError reports a perturbation search that did not close a path.
type ClosureError struct {
	// Size is the number of vertices of the path that failed to close.
	Size int
	// Attempts is the number of perturbation steps spent.
	Attempts int
}

// Error implements error.
func (e *ClosureError) Error() string {
	return fmt.Sprintf("%v: size %d after %d attempts", ErrClosureFailed, e.Size, e.Attempts)
}

// Unwrap lets errors.Is match ErrClosureFailed.
func (e *ClosureError) Unwrap() error { return ErrClosureFailed }
