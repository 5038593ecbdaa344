package admission

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/juju/ratelimit"
	"github.com/ngaut/log"
)

type ControllerConfig struct {
	// OpTimeout is the per-operation timeout budget for a single cohort
	// call. As the tracked latency approaches it, admission falls off.
	OpTimeout time.Duration
	// Percentile of the latency window used for the limit computation.
	Percentile float64
	// Ceiling is the admission rate (tx/s) with an idle cohort set.
	Ceiling float64
	// Floor is the lowest rate the limit may decay to. Must be > 0 so a
	// single bad reading can never stall admission completely.
	Floor float64
}

// Controller converts observed commit latency into a permissible rate of
// new-transaction creation. It holds no per-transaction state and may be
// shared by every coordinator in the process.
type Controller struct {
	cfg     ControllerConfig
	tracker *LatencyTracker

	mu     sync.Mutex
	bucket *ratelimit.Bucket
	rate   float64
}

func NewController(cfg ControllerConfig, tracker *LatencyTracker) *Controller {
	if cfg.Percentile <= 0 || cfg.Percentile > 100 {
		cfg.Percentile = 90
	}
	if cfg.Ceiling <= 0 {
		cfg.Ceiling = 100
	}
	if cfg.Floor <= 0 {
		cfg.Floor = 1
	}
	if cfg.Floor > cfg.Ceiling {
		cfg.Floor = cfg.Ceiling
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = 5 * time.Second
	}

	if tracker == nil {
		tracker = NewLatencyTracker(DefaultWindowSize)
	}

	return &Controller{
		cfg:     cfg,
		tracker: tracker,
		bucket:  ratelimit.NewBucketWithRate(cfg.Ceiling, int64(math.Ceil(cfg.Ceiling))),
		rate:    cfg.Ceiling,
	}
}

// Tracker returns the latency window the controller reads from. Commit
// completions are recorded here.
func (c *Controller) Tracker() *LatencyTracker {
	return c.tracker
}

// CurrentLimit returns the permissible rate of new-transaction creation in
// transactions per second. The limit decays linearly as the tracked
// percentile latency approaches the per-operation timeout budget:
//
//	limit = ceiling * (1 - latency/budget)
//
// clamped to [floor, ceiling]. It is monotonically non-increasing in the
// observed latency and never reaches zero. Enforcement is up to the caller;
// Admit offers it for callers that want pacing.
func (c *Controller) CurrentLimit() float64 {
	latency := c.tracker.Percentile(c.cfg.Percentile)
	if latency <= 0 {
		return c.cfg.Ceiling
	}

	limit := c.cfg.Ceiling * (1 - float64(latency)/float64(c.cfg.OpTimeout))
	if limit < c.cfg.Floor {
		return c.cfg.Floor
	}
	if limit > c.cfg.Ceiling {
		return c.cfg.Ceiling
	}
	return limit
}

// Admit blocks until the current rate allows one more transaction or the
// context is done.
func (c *Controller) Admit(ctx context.Context) error {
	wait := c.refreshBucket().Take(1)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// refreshBucket re-rates the token bucket when the computed limit has
// drifted from the bucket's rate. The bucket is replaced rather than
// mutated; ratelimit buckets carry a fixed rate.
func (c *Controller) refreshBucket() *ratelimit.Bucket {
	limit := c.CurrentLimit()

	c.mu.Lock()
	defer c.mu.Unlock()

	if math.Abs(limit-c.rate) > c.rate*0.01 {
		log.Debugf("admission rate %.2f -> %.2f tx/s", c.rate, limit)
		c.bucket = ratelimit.NewBucketWithRate(limit, int64(math.Ceil(limit)))
		c.rate = limit
	}

	return c.bucket
}

// Rate returns the rate the pacing bucket is currently running at.
func (c *Controller) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}
