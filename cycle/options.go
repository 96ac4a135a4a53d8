package cycle

import "math/rand"

// DefaultMaxAttempts is the perturbation step cap per Close call.
const DefaultMaxAttempts = 10000

// Options configures a Perturber.
type Options struct {
	// MaxAttempts caps the perturbation steps of one Close call (≥1).
	MaxAttempts int

	// Seed drives the random stream; 0 selects a fixed default seed.
	// Ignored when a source is injected with WithRand.
	Seed int64

	// Strict runs the full O(n) path/cycle validation after every successful
	// Close. Off by default: closing moves are checked at their O(1) boundary.
	Strict bool

	rng *rand.Rand
}

// DefaultOptions returns the defaults: MaxAttempts=DefaultMaxAttempts,
// Seed=0 (default stream), Strict=false.
func DefaultOptions() Options {
	return Options{MaxAttempts: DefaultMaxAttempts}
}

// Option customizes Options. Constructors panic on meaningless input;
// the algorithms themselves never panic.
type Option func(*Options)

// WithMaxAttempts sets the step cap of Close. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("cycle: WithMaxAttempts requires n ≥ 1")
	}
	return func(o *Options) { o.MaxAttempts = n }
}

// WithSeed selects a deterministic random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit random source. Panics on nil; prefer WithSeed
// for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cycle: WithRand(nil)")
	}
	return func(o *Options) { o.rng = r }
}

// WithStrict toggles full validation after each Close.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}
