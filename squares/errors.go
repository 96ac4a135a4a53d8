package squares

import "errors"

var (
	// ErrSizeTooSmall indicates a graph size below 1.
	ErrSizeTooSmall = errors.New("squares: graph size must be at least 1")
	// ErrVertexOutOfRange indicates a vertex outside [1, n].
	ErrVertexOutOfRange = errors.New("squares: vertex out of range")
	// ErrIsolatedVertex indicates a vertex with no square-sum partner in [1, n].
	ErrIsolatedVertex = errors.New("squares: vertex has no square-sum neighbor")
)
