package cycle

import (
	"fmt"
	"math/rand"
)

// Perturber closes Hamiltonian paths into Hamiltonian cycles by randomized
// reversals. It owns a single random stream and is not safe for concurrent use.
type Perturber struct {
	opts Options
	rng  *rand.Rand
}

// NewPerturber applies opts over DefaultOptions and seeds the random stream.
func NewPerturber(opts ...Option) *Perturber {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.rng
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	return &Perturber{opts: o, rng: r}
}

// Options returns the effective configuration.
func (p *Perturber) Options() Options { return p.opts }

// Rand returns the random stream shared by Extend and Step.
func (p *Perturber) Rand() *rand.Rand { return p.rng }

// Extend is Extend(prev, p.Rand()).
func (p *Perturber) Extend(prev *State) (*State, error) {
	return Extend(prev, p.rng)
}

// Step applies one perturbation to the path s and keeps it a path.
//
//  1. Greedy closure: for each partner q of the first vertex at position k,
//     if seq[k-1]+last is a square, reversing seq[0..k-1] brings seq[k-1] to
//     the front and closes the cycle. The first such q is taken.
//  2. Otherwise, with equal probability, reverse the suffix behind a random
//     partner of the last vertex, or the prefix before a random partner of
//     the first vertex.
//
// Returns ErrInvariant if a greedy move fails to close, and the wrapped
// squares error if an endpoint has no partner.
//
// Complexity: O(√n) candidate checks + O(length reversed).
func (p *Perturber) Step(s *State) error {
	var (
		n     = len(s.seq)
		first = s.seq[0]
		last  = s.seq[n-1]
		k     int
		at    int
		w     int
	)

	head, err := s.Edges(first)
	if err != nil {
		return fmt.Errorf("cycle: step: %w", err)
	}
	for k = 0; k < head.Len(); k++ {
		at = s.index[head.At(k)] // ≥ 1: a partner is never the first vertex itself
		if s.set.Contains(s.seq[at-1] + last) {
			s.reverseRange(0, at-1)
			if !s.IsCycle() {
				return fmt.Errorf("%w: greedy reversal at %d left %d+%d open", ErrInvariant, at, s.seq[0], last)
			}
			return nil
		}
	}

	if p.rng.Float64() < 0.5 {
		tail, err := s.Edges(last)
		if err != nil {
			return fmt.Errorf("cycle: step: %w", err)
		}
		if w, err = tail.Random(p.rng); err != nil {
			return fmt.Errorf("cycle: step at %d: %w", last, err)
		}
		s.reverseRange(s.index[w]+1, n-1)
		return nil
	}

	if w, err = head.Random(p.rng); err != nil {
		return fmt.Errorf("cycle: step at %d: %w", first, err)
	}
	s.reverseRange(0, s.index[w]-1)

	return nil
}

// Close perturbs the path s in place until it is a cycle, spending at most
// maxAttempts steps (maxAttempts ≤ 0 selects Options.MaxAttempts). The number
// of steps taken is recorded and exposed by s.Iterations.
//
// A State that already closes costs zero steps. Exhausting the cap returns a
// *ClosureError (errors.Is(err, ErrClosureFailed)); callers abort rather than
// retry, since no bound on the steps needed is known. With Options.Strict the
// closed state is fully validated and any defect reported as ErrInvariant.
//
// Complexity: O(steps · (√n + n)) worst case; typically a few dozen steps.
func (p *Perturber) Close(s *State, maxAttempts int) error {
	if maxAttempts <= 0 {
		maxAttempts = p.opts.MaxAttempts
	}

	s.iterations = 0
	var i int
	for i = 0; i < maxAttempts; i++ {
		if s.IsCycle() {
			break
		}
		if err := p.Step(s); err != nil {
			return err
		}
		s.iterations++
	}
	if !s.IsCycle() {
		return &ClosureError{Size: len(s.seq), Attempts: s.iterations}
	}

	if p.opts.Strict {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: after close of size %d: %v", ErrInvariant, len(s.seq), err)
		}
	}

	return nil
}
