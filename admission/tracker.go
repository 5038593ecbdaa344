package admission

import (
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

const DefaultWindowSize = 128

// LatencyTracker keeps a bounded window of recent commit latencies and
// answers arbitrary percentile queries over it. There are at most `size`
// samples; new ones overwrite the oldest. Record and Percentile are safe to
// call concurrently from any number of coordinators.
type LatencyTracker struct {
	mu      sync.RWMutex
	samples []float64
	size    uint64
	count   uint64
}

func NewLatencyTracker(size int) *LatencyTracker {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &LatencyTracker{
		samples: make([]float64, size),
		size:    uint64(size),
	}
}

// Record adds one commit latency to the window.
func (t *LatencyTracker) Record(d time.Duration) {
	t.mu.Lock()
	t.samples[t.count%t.size] = float64(d)
	t.count++
	t.mu.Unlock()
}

// Percentile returns the pth percentile (0 < p <= 100) of the current
// window. It returns zero when the window holds no samples, or too few for
// the requested percentile to be answerable. The query works on a
// snapshot of the window and never blocks writers for the duration of the
// percentile computation.
func (t *LatencyTracker) Percentile(p float64) time.Duration {
	t.mu.RLock()
	n := t.count
	if n > t.size {
		n = t.size
	}
	records := make([]float64, n)
	copy(records, t.samples[:n])
	t.mu.RUnlock()

	if len(records) == 0 {
		return 0
	}

	v, err := stats.Percentile(records, p)
	if err != nil {
		return 0
	}

	return time.Duration(v)
}

// Len returns the number of samples currently in the window.
func (t *LatencyTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.count > t.size {
		return int(t.size)
	}
	return int(t.count)
}
