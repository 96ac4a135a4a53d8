package driver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/squaresum/cycle"
	"github.com/katalvlaran/squaresum/driver"
	"github.com/katalvlaran/squaresum/squares"
)

// fixedClock returns a constant checkpoint time.
func fixedClock() time.Time {
	return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
}

// collector records every checkpoint.
type collector struct {
	got []driver.Checkpoint
}

func (c *collector) Report(cp driver.Checkpoint) error {
	c.got = append(c.got, cp)
	return nil
}

func TestRun_StopsAtCeilingWithMilestones(t *testing.T) {
	var c collector
	d := driver.New(
		driver.WithCeiling(40),
		driver.WithMilestones(4, 0),
		driver.WithCycleOptions(cycle.WithSeed(42), cycle.WithStrict(true)),
		driver.WithReporter(&c),
	)
	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 32, sum.Start)
	assert.Equal(t, 40, sum.Final)
	assert.Equal(t, 8, sum.Extensions)
	assert.GreaterOrEqual(t, sum.Steps, sum.MaxIterations)

	require.Len(t, c.got, 3)
	sizes := []int{c.got[0].Size, c.got[1].Size, c.got[2].Size}
	assert.Equal(t, []int{32, 36, 40}, sizes)
	assert.False(t, c.got[0].Final)
	assert.True(t, c.got[2].Final)
	assert.Zero(t, c.got[0].Iterations, "the seed costs no steps")

	for _, cp := range c.got {
		require.Len(t, cp.Cycle, cp.Size)
		require.Equal(t, 1, cp.Cycle[0])
		var i int
		for i = 1; i < len(cp.Cycle); i++ {
			require.True(t, squares.IsSquare(cp.Cycle[i-1]+cp.Cycle[i]))
		}
		require.True(t, squares.IsSquare(cp.Cycle[0]+cp.Cycle[len(cp.Cycle)-1]))
	}

	require.NoError(t, d.State().Validate())
	assert.Equal(t, 40, d.State().Len())
}

func TestRun_DefaultMilestoneReportsSeed(t *testing.T) {
	var c collector
	d := driver.New(driver.WithCeiling(34), driver.WithReporter(&c))
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, c.got, 2)
	assert.Equal(t, 32, c.got[0].Size) // 32 % 256 == 32
	assert.Equal(t, 34, c.got[1].Size)
	assert.True(t, c.got[1].Final)
}

func TestRun_StartAtCeiling(t *testing.T) {
	var c collector
	d := driver.New(driver.WithCeiling(32), driver.WithReporter(&c))
	sum, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Extensions)
	require.Len(t, c.got, 1)
	assert.True(t, c.got[0].Final)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() []driver.Checkpoint {
		var c collector
		d := driver.New(
			driver.WithCeiling(60),
			driver.WithMilestones(10, 0),
			driver.WithCycleOptions(cycle.WithSeed(5)),
			driver.WithReporter(&c),
			driver.WithClock(fixedClock),
		)
		_, err := d.Run(context.Background())
		require.NoError(t, err)
		return c.got
	}
	assert.Equal(t, run(), run())
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var c collector
	d := driver.New(driver.WithCeiling(100), driver.WithReporter(&c))
	sum, err := d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Extensions)
	assert.Equal(t, 32, sum.Final)
	assert.Len(t, c.got, 1, "the seed milestone precedes the cancellation check")
}

func TestRun_ClosureFailureIsFatal(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := driver.NewMetrics(reg)
	d := driver.New(
		driver.WithCeiling(200),
		driver.WithMilestones(0, 0),
		driver.WithCycleOptions(cycle.WithSeed(1), cycle.WithMaxAttempts(1)),
		driver.WithMetrics(m),
	)
	sum, err := d.Run(context.Background())
	require.ErrorIs(t, err, cycle.ErrClosureFailed)

	var ce *cycle.ClosureError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Attempts)
	assert.Equal(t, sum.Final+1, ce.Size)
	assert.Less(t, sum.Final, 200)

	assert.Equal(t, 1.0, sampleValue(t, reg, "squaresum_closure_failures_total"))
	require.NoError(t, d.State().Validate(), "the last closed cycle is kept")
}

func TestRun_RejectsOpenStart(t *testing.T) {
	open, err := cycle.New([]int{8, 1, 15, 10, 6, 3, 13, 12, 4, 5, 11, 14, 2, 7, 9})
	require.NoError(t, err)
	_, err = driver.New(driver.WithStart(open)).Run(context.Background())
	require.ErrorIs(t, err, cycle.ErrNotCycle)
}

func TestRun_ReporterErrorAborts(t *testing.T) {
	boom := errors.New("disk full")
	d := driver.New(driver.WithReporter(driver.ReporterFunc(func(driver.Checkpoint) error { return boom })))
	_, err := d.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestRun_StartFromGrownCycle(t *testing.T) {
	first := driver.New(driver.WithCeiling(36), driver.WithCycleOptions(cycle.WithSeed(3)))
	_, err := first.Run(context.Background())
	require.NoError(t, err)

	var c collector
	second := driver.New(
		driver.WithStart(first.State()),
		driver.WithCeiling(38),
		driver.WithMilestones(0, 0),
		driver.WithReporter(&c),
	)
	sum, err := second.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 36, sum.Start)
	assert.Equal(t, 38, sum.Final)
	require.Len(t, c.got, 1)
	assert.Equal(t, 36, first.State().Len(), "WithStart clones")
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := driver.NewMetrics(reg)
	d := driver.New(driver.WithCeiling(45), driver.WithMetrics(m), driver.WithCycleOptions(cycle.WithSeed(9)))
	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 45.0, sampleValue(t, reg, "squaresum_cycle_size"))
	assert.Equal(t, float64(sum.Extensions), sampleValue(t, reg, "squaresum_extensions_total"))
	assert.Equal(t, float64(sum.Steps), sampleValue(t, reg, "squaresum_perturbation_steps_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "squaresum_close_iterations"))
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	d := driver.New(driver.WithCeiling(33), driver.WithLogger(logger))
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "starting")
	assert.Contains(t, out, "closed")
	assert.Contains(t, out, "ceiling reached")
}

func TestTextReporter_Format(t *testing.T) {
	var buf bytes.Buffer
	r := driver.NewTextReporter(&buf)
	require.NoError(t, r.Report(driver.Checkpoint{Time: fixedClock(), Size: 3, Iterations: 7, Cycle: []int{1, 2, 3}}))
	assert.Equal(t, "2026-10-14T12:00:00Z 3 7 [1 2 3]\n", buf.String())
}

func TestJSONReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	d := driver.New(
		driver.WithCeiling(34),
		driver.WithReporter(driver.NewJSONReporter(&buf)),
		driver.WithClock(fixedClock),
	)
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var cp driver.Checkpoint
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &cp))
	assert.Equal(t, 34, cp.Size)
	assert.True(t, cp.Final)
	assert.True(t, cp.Time.Equal(fixedClock()))
	assert.Len(t, cp.Cycle, 34)
}

func TestMultiReporter_JoinsErrors(t *testing.T) {
	var a, b collector
	boom := errors.New("boom")
	m := driver.MultiReporter{&a, driver.ReporterFunc(func(driver.Checkpoint) error { return boom }), &b}
	err := m.Report(driver.Checkpoint{Size: 1})
	require.ErrorIs(t, err, boom)
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { driver.WithCeiling(0) })
	assert.Panics(t, func() { driver.WithMilestones(-1, 0) })
	assert.Panics(t, func() { driver.WithMilestones(4, 4) })
	assert.Panics(t, func() { driver.WithStart(nil) })
	assert.Panics(t, func() { driver.WithReporter(nil) })
	assert.Panics(t, func() { driver.WithLogger(nil) })
	assert.Panics(t, func() { driver.WithClock(nil) })
	assert.NotPanics(t, func() { driver.WithMilestones(0, 0) })
}
