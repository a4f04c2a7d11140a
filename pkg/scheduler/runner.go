package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/windtunnel-io/gale/internal/logger"
)

// UnknownPhase is the phase label used when no phase has been assigned.
const UnknownPhase = "UNKNOWN_PHASE"

// RequestFunc issues a single load-generation request. The context is
// cancelled when the runner shuts down.
type RequestFunc func(ctx context.Context)

// Metrics receives scheduler observations. Implementations must be safe
// for concurrent use. A nil Metrics disables collection with no overhead.
type Metrics interface {
	ObserveIssued()
	ObserveCompleted(duration time.Duration)
	ObserveThrottled()
	SetRunning(running bool)
	SetTargetRPS(rps int32)
	SetMaxOutstanding(n int32)
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	// RPS is the initial target request rate. Default: 10.
	RPS int32

	// MaxOutstanding is the initial cap on concurrent in-flight
	// requests. Default: 100.
	MaxOutstanding int32

	// Phase is the initial phase label. Default: UnknownPhase.
	Phase string

	// StartPaused creates the runner in the paused state.
	StartPaused bool
}

// applyDefaults fills in zero values with sensible defaults.
func (c *RunnerConfig) applyDefaults() {
	if c.RPS == 0 {
		c.RPS = 10
	}
	if c.MaxOutstanding == 0 {
		c.MaxOutstanding = 100
	}
	if c.Phase == "" {
		c.Phase = UnknownPhase
	}
}

// Runner is a paced load scheduler. It fires the configured RequestFunc
// at the target rate while the number of in-flight requests stays under
// the max-outstanding cap; requests that would exceed the cap are
// skipped and counted as throttled.
//
// Rate and cap changes take effect on the next pacing interval. Pause
// gates the pacing loop without stopping it, so Resume is immediate.
type Runner struct {
	mu      sync.RWMutex
	running bool
	phase   string
	rps     int32
	maxOut  int32

	outstanding atomic.Int64

	request RequestFunc
	metrics Metrics

	wg sync.WaitGroup
}

// NewRunner creates a Runner. The request function may be nil, in which
// case each issued request is a no-op (useful for dry runs and tests).
func NewRunner(cfg RunnerConfig, request RequestFunc, metrics Metrics) *Runner {
	cfg.applyDefaults()
	r := &Runner{
		running: !cfg.StartPaused,
		phase:   cfg.Phase,
		rps:     cfg.RPS,
		maxOut:  cfg.MaxOutstanding,
		request: request,
		metrics: metrics,
	}
	if metrics != nil {
		metrics.SetRunning(r.running)
		metrics.SetTargetRPS(r.rps)
		metrics.SetMaxOutstanding(r.maxOut)
	}
	return r
}

// Run drives the pacing loop until the context is cancelled. It blocks;
// callers run it on a dedicated goroutine. Outstanding requests are
// waited for before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	logger.Info("Scheduler started",
		"phase", r.Phase(), "rps", r.RPS(), "max_outstanding", r.MaxOutstanding())

	timer := time.NewTimer(r.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler stopping", "outstanding", r.outstanding.Load())
			r.wg.Wait()
			logger.Info("Scheduler stopped")
			return ctx.Err()
		case <-timer.C:
			r.tick(ctx)
			timer.Reset(r.interval())
		}
	}
}

// tick issues one request if the runner is running and under the cap.
func (r *Runner) tick(ctx context.Context) {
	if !r.IsRunning() {
		return
	}
	if r.outstanding.Load() >= int64(r.MaxOutstanding()) {
		if r.metrics != nil {
			r.metrics.ObserveThrottled()
		}
		return
	}

	r.outstanding.Add(1)
	if r.metrics != nil {
		r.metrics.ObserveIssued()
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.outstanding.Add(-1)
		start := time.Now()
		if r.request != nil {
			r.request(ctx)
		}
		if r.metrics != nil {
			r.metrics.ObserveCompleted(time.Since(start))
		}
	}()
}

// interval returns the current pacing interval. A non-positive rate
// effectively idles the loop at one wakeup per second.
func (r *Runner) interval() time.Duration {
	rps := r.RPS()
	if rps <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rps)
}

// Pause implements Scheduler.
func (r *Runner) Pause() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.SetRunning(false)
	}
}

// Resume implements Scheduler.
func (r *Runner) Resume() bool {
	r.mu.Lock()
	r.running = true
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.SetRunning(true)
	}
	return true
}

// SetPhase implements Scheduler.
func (r *Runner) SetPhase(name string) {
	if name == "" {
		name = UnknownPhase
	}
	r.mu.Lock()
	r.phase = name
	r.mu.Unlock()
}

// Phase implements Scheduler.
func (r *Runner) Phase() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

// SetRPS implements Scheduler. The new rate takes effect on the next
// pacing interval.
func (r *Runner) SetRPS(rps int32) {
	r.mu.Lock()
	r.rps = rps
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.SetTargetRPS(rps)
	}
}

// RPS implements Scheduler.
func (r *Runner) RPS() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rps
}

// SetMaxOutstanding implements Scheduler.
func (r *Runner) SetMaxOutstanding(n int32) {
	r.mu.Lock()
	r.maxOut = n
	r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.SetMaxOutstanding(n)
	}
}

// MaxOutstanding implements Scheduler.
func (r *Runner) MaxOutstanding() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxOut
}

// IsRunning implements Scheduler.
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// Outstanding returns the number of requests currently in flight.
func (r *Runner) Outstanding() int {
	return int(r.outstanding.Load())
}

var _ Scheduler = (*Runner)(nil)
