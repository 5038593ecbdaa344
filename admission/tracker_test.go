package admission

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentileEmptyWindow(t *testing.T) {
	tracker := NewLatencyTracker(8)

	assert.Equal(t, time.Duration(0), tracker.Percentile(90))
	assert.Zero(t, tracker.Len())
}

func TestPercentileOrdering(t *testing.T) {
	tracker := NewLatencyTracker(16)

	for i := 1; i <= 10; i++ {
		tracker.Record(time.Duration(i) * time.Millisecond)
	}

	assert.Equal(t, 10, tracker.Len())
	assert.Equal(t, 10*time.Millisecond, tracker.Percentile(100))

	p50 := tracker.Percentile(50)
	p90 := tracker.Percentile(90)
	assert.True(t, p50 <= p90, "percentiles must be ordered: p50=%v p90=%v", p50, p90)
	assert.True(t, p90 <= 10*time.Millisecond)
}

func TestWindowEvictsOldestSamples(t *testing.T) {
	tracker := NewLatencyTracker(4)

	tracker.Record(time.Hour)
	for i := 0; i < 4; i++ {
		tracker.Record(time.Millisecond)
	}

	assert.Equal(t, 4, tracker.Len())
	assert.Equal(t, time.Millisecond, tracker.Percentile(100),
		"the old outlier must have been evicted from the window")
}

func TestConcurrentRecordAndQuery(t *testing.T) {
	tracker := NewLatencyTracker(64)

	wg := sync.WaitGroup{}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Record(time.Millisecond)
				_ = tracker.Percentile(90)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, time.Millisecond, tracker.Percentile(100))
}
