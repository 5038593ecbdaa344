package admission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(tracker *LatencyTracker) *Controller {
	return NewController(ControllerConfig{
		OpTimeout:  time.Second,
		Percentile: 90,
		Ceiling:    100,
		Floor:      2,
	}, tracker)
}

func fill(tracker *LatencyTracker, d time.Duration, n int) {
	for i := 0; i < n; i++ {
		tracker.Record(d)
	}
}

func TestLimitAtCeilingWithoutSamples(t *testing.T) {
	ctrl := newTestController(NewLatencyTracker(16))

	assert.Equal(t, 100.0, ctrl.CurrentLimit())
}

func TestLimitDecaysLinearly(t *testing.T) {
	tracker := NewLatencyTracker(16)
	ctrl := newTestController(tracker)

	// All samples identical, so every percentile reads 500ms of a 1s
	// budget: half the ceiling remains.
	fill(tracker, 500*time.Millisecond, 8)

	assert.InDelta(t, 50.0, ctrl.CurrentLimit(), 0.01)
}

func TestLimitIsNonIncreasingInLatency(t *testing.T) {
	latencies := []time.Duration{
		10 * time.Millisecond,
		100 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		time.Second,
		2 * time.Second,
	}

	prev := 101.0

	for _, latency := range latencies {
		tracker := NewLatencyTracker(16)
		fill(tracker, latency, 8)

		limit := newTestController(tracker).CurrentLimit()
		assert.True(t, limit <= prev, "limit %v at latency %v exceeds previous %v", limit, latency, prev)
		prev = limit
	}
}

func TestLimitNeverDropsBelowFloor(t *testing.T) {
	tracker := NewLatencyTracker(16)
	ctrl := newTestController(tracker)

	fill(tracker, time.Minute, 8)

	assert.Equal(t, 2.0, ctrl.CurrentLimit())
}

func TestAdmitWithIdleCohorts(t *testing.T) {
	ctrl := newTestController(NewLatencyTracker(16))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, ctrl.Admit(ctx))
}

func TestAdmitRespectsContext(t *testing.T) {
	tracker := NewLatencyTracker(16)
	ctrl := newTestController(tracker)

	// Drive the rate to the floor, then drain the bucket so the next
	// admit has to wait longer than the context allows.
	fill(tracker, time.Minute, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var err error
	for i := 0; i < 16 && err == nil; i++ {
		err = ctrl.Admit(ctx)
	}

	assert.Equal(t, context.DeadlineExceeded, err)
}

func TestBucketFollowsTheLimit(t *testing.T) {
	tracker := NewLatencyTracker(16)
	ctrl := newTestController(tracker)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, ctrl.Admit(ctx))
	assert.InDelta(t, 100.0, ctrl.Rate(), 0.01)

	fill(tracker, time.Minute, 8)
	_ = ctrl.Admit(ctx)

	assert.InDelta(t, 2.0, ctrl.Rate(), 0.01)
}
