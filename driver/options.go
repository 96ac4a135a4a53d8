package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/squaresum/cycle"
)

// Defaults mirror the classic run: report when size%256 == 32 and stop at 300000.
const (
	DefaultCeiling         = 300000
	DefaultMilestoneEvery  = 256
	DefaultMilestoneOffset = 32
)

// config aggregates all Driver knobs.
type config struct {
	ceiling   int
	every     int // 0 disables milestone checkpoints
	offset    int
	cycleOpts []cycle.Option
	start     *cycle.State
	reporter  Reporter
	logger    *log.Logger
	metrics   *Metrics
	now       func() time.Time
}

func defaultConfig() config {
	return config{
		ceiling:  DefaultCeiling,
		every:    DefaultMilestoneEvery,
		offset:   DefaultMilestoneOffset,
		reporter: Discard,
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
}

// Option customizes a Driver. Constructors panic on meaningless input.
type Option func(*config)

// WithCeiling stops the run once the cycle has n vertices. Panics if n < 1.
func WithCeiling(n int) Option {
	if n < 1 {
		panic("driver: WithCeiling requires n ≥ 1")
	}
	return func(c *config) { c.ceiling = n }
}

// WithMilestones reports a checkpoint whenever size%every == offset.
// every == 0 disables milestones (the final checkpoint is still reported).
// Panics on negative every or offset outside [0, every).
func WithMilestones(every, offset int) Option {
	if every < 0 || offset < 0 || (every > 0 && offset >= every) {
		panic("driver: WithMilestones requires every ≥ 0 and 0 ≤ offset < every")
	}
	return func(c *config) {
		c.every = every
		c.offset = offset
	}
}

// WithCycleOptions configures the underlying cycle.Perturber.
func WithCycleOptions(opts ...cycle.Option) Option {
	return func(c *config) { c.cycleOpts = append(c.cycleOpts, opts...) }
}

// WithStart grows from s instead of the seed. s must be a cycle; it is cloned.
// Panics on nil.
func WithStart(s *cycle.State) Option {
	if s == nil {
		panic("driver: WithStart(nil)")
	}
	return func(c *config) { c.start = s.Clone() }
}

// WithReporter sets the checkpoint sink. Panics on nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic("driver: WithReporter(nil)")
	}
	return func(c *config) { c.reporter = r }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records progress into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithClock overrides the checkpoint time source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("driver: WithClock(nil)")
	}
	return func(c *config) { c.now = now }
}
