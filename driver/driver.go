package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/squaresum/cycle"
)

// Summary describes a finished (or aborted) run.
type Summary struct {
	Start         int           // size the run started from
	Final         int           // size of the last closed cycle
	Extensions    int           // successful extend+close rounds
	Steps         int           // perturbation steps over all rounds
	MaxIterations int           // largest step count of a single round
	Elapsed       time.Duration // wall time of Run
}

// Driver owns the current cycle and grows it towards the ceiling.
// It is not safe for concurrent use.
type Driver struct {
	cfg       config
	state     *cycle.State
	perturber *cycle.Perturber
}

// New builds a Driver from the seed cycle (or WithStart) and opts.
func New(opts ...Option) *Driver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	st := cfg.start
	if st == nil {
		st = cycle.Seed()
	}

	return &Driver{
		cfg:       cfg,
		state:     st,
		perturber: cycle.NewPerturber(cfg.cycleOpts...),
	}
}

// State returns the current cycle. Callers must not mutate it.
func (d *Driver) State() *cycle.State { return d.state }

// Run grows the cycle until it reaches the ceiling, the context is cancelled,
// or a round fails. Before each round the current cycle is reported if its
// size is a milestone; at the ceiling a final checkpoint is reported.
//
// Errors: the start cycle is open (cycle.ErrNotCycle), a round exhausts its
// attempt cap (*cycle.ClosureError, matched by cycle.ErrClosureFailed), a
// Reporter fails, or ctx.Err(). The Summary is valid in every case.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	started := time.Now()
	sum := Summary{Start: d.state.Len(), Final: d.state.Len()}
	done := func(err error) (Summary, error) {
		sum.Final = d.state.Len()
		sum.Elapsed = time.Since(started)
		return sum, err
	}

	if err := d.state.Validate(); err != nil {
		return done(fmt.Errorf("driver: start cycle: %w", err))
	}
	d.cfg.metrics.setSize(d.state.Len())
	d.cfg.logger.Info("starting", "size", d.state.Len(), "ceiling", d.cfg.ceiling,
		"max_attempts", d.perturber.Options().MaxAttempts)

	for {
		size := d.state.Len()
		if size >= d.cfg.ceiling {
			if err := d.report(true); err != nil {
				return done(err)
			}
			d.cfg.logger.Info("ceiling reached", "size", size, "extensions", sum.Extensions, "steps", sum.Steps)
			return done(nil)
		}
		if d.isMilestone(size) {
			if err := d.report(false); err != nil {
				return done(err)
			}
		}
		if err := ctx.Err(); err != nil {
			d.cfg.logger.Warn("stopped", "size", size, "err", err)
			return done(err)
		}

		next, err := d.perturber.Extend(d.state)
		if err != nil {
			return done(fmt.Errorf("driver: %w", err))
		}
		if err = d.perturber.Close(next, 0); err != nil {
			d.cfg.metrics.closureFailed(next.Iterations())
			d.cfg.logger.Error("closure failed", "size", next.Len(), "attempts", next.Iterations(), "err", err)
			return done(fmt.Errorf("driver: %w", err))
		}

		d.state = next
		sum.Extensions++
		sum.Steps += next.Iterations()
		if next.Iterations() > sum.MaxIterations {
			sum.MaxIterations = next.Iterations()
		}
		d.cfg.metrics.closed(next.Len(), next.Iterations())
		d.cfg.logger.Debug("closed", "size", next.Len(), "iterations", next.Iterations())
	}
}

func (d *Driver) isMilestone(size int) bool {
	return d.cfg.every > 0 && size%d.cfg.every == d.cfg.offset
}

// report sends the current cycle, in canonical form, to the reporter.
func (d *Driver) report(final bool) error {
	c, err := d.state.Canonical()
	if err != nil {
		return fmt.Errorf("driver: checkpoint at %d: %w", d.state.Len(), err)
	}
	cp := Checkpoint{
		Time:       d.cfg.now(),
		Size:       d.state.Len(),
		Iterations: d.state.Iterations(),
		Cycle:      c,
		Final:      final,
	}
	if err = d.cfg.reporter.Report(cp); err != nil {
		return fmt.Errorf("driver: report %d: %w", cp.Size, err)
	}
	d.cfg.logger.Info("checkpoint", "size", cp.Size, "iterations", cp.Iterations, "final", final)

	return nil
}
