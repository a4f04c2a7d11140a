package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/windtunnel-io/gale/pkg/scheduler"
)

// SchedulerMetrics implements scheduler.Metrics on top of the
// process-wide Prometheus registry.
type SchedulerMetrics struct {
	issued    prometheus.Counter
	throttled prometheus.Counter
	latency   prometheus.Histogram

	running        prometheus.Gauge
	targetRPS      prometheus.Gauge
	maxOutstanding prometheus.Gauge
}

// NewSchedulerMetrics registers the scheduler metrics with the
// process-wide registry. Returns nil when metrics are disabled; the
// scheduler treats a nil Metrics as collection turned off.
func NewSchedulerMetrics() scheduler.Metrics {
	reg := GetRegistry()
	if reg == nil {
		return nil
	}

	m := &SchedulerMetrics{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_scheduler_requests_issued_total",
			Help: "Total number of load requests issued",
		}),
		throttled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_scheduler_requests_throttled_total",
			Help: "Total number of pacing ticks skipped at the in-flight cap",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gale_scheduler_request_duration_seconds",
			Help:    "Load request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gale_scheduler_running",
			Help: "Whether the scheduler is issuing requests (1) or paused (0)",
		}),
		targetRPS: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gale_scheduler_target_rps",
			Help: "Current target request rate",
		}),
		maxOutstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gale_scheduler_max_outstanding",
			Help: "Current cap on concurrent in-flight requests",
		}),
	}

	reg.MustRegister(
		m.issued, m.throttled, m.latency,
		m.running, m.targetRPS, m.maxOutstanding,
	)
	return m
}

// ObserveIssued implements scheduler.Metrics.
func (m *SchedulerMetrics) ObserveIssued() {
	m.issued.Inc()
}

// ObserveCompleted implements scheduler.Metrics.
func (m *SchedulerMetrics) ObserveCompleted(duration time.Duration) {
	m.latency.Observe(duration.Seconds())
}

// ObserveThrottled implements scheduler.Metrics.
func (m *SchedulerMetrics) ObserveThrottled() {
	m.throttled.Inc()
}

// SetRunning implements scheduler.Metrics.
func (m *SchedulerMetrics) SetRunning(running bool) {
	if running {
		m.running.Set(1)
	} else {
		m.running.Set(0)
	}
}

// SetTargetRPS implements scheduler.Metrics.
func (m *SchedulerMetrics) SetTargetRPS(rps int32) {
	m.targetRPS.Set(float64(rps))
}

// SetMaxOutstanding implements scheduler.Metrics.
func (m *SchedulerMetrics) SetMaxOutstanding(n int32) {
	m.maxOutstanding.Set(float64(n))
}
