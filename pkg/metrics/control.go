package metrics

import "github.com/prometheus/client_golang/prometheus"

// ControlMetrics counts control plane operations. All methods are safe
// to call on a nil receiver, so callers never branch on whether metrics
// are enabled.
type ControlMetrics struct {
	pauses         prometheus.Counter
	resumes        prometheus.Counter
	rateChanges    prometheus.Counter
	capChanges     prometheus.Counter
	overrideWrites prometheus.Counter
	overrideMisses prometheus.Counter
}

// NewControlMetrics registers the control plane counters with the
// process-wide registry. Returns nil when metrics are disabled.
func NewControlMetrics() *ControlMetrics {
	reg := GetRegistry()
	if reg == nil {
		return nil
	}

	m := &ControlMetrics{
		pauses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_pause_total",
			Help: "Total number of pause operations handled",
		}),
		resumes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_resume_total",
			Help: "Total number of resume operations handled",
		}),
		rateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_rate_change_total",
			Help: "Total number of target rate changes",
		}),
		capChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_max_outstanding_change_total",
			Help: "Total number of max outstanding cap changes",
		}),
		overrideWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_override_write_total",
			Help: "Total number of configuration override writes",
		}),
		overrideMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gale_control_override_parse_failure_total",
			Help: "Total number of override reads that failed to parse and fell back to the default",
		}),
	}

	reg.MustRegister(
		m.pauses, m.resumes, m.rateChanges,
		m.capChanges, m.overrideWrites, m.overrideMisses,
	)
	return m
}

// IncPause counts one pause operation.
func (m *ControlMetrics) IncPause() {
	if m == nil {
		return
	}
	m.pauses.Inc()
}

// IncResume counts one resume operation.
func (m *ControlMetrics) IncResume() {
	if m == nil {
		return
	}
	m.resumes.Inc()
}

// IncRateChange counts one target rate change.
func (m *ControlMetrics) IncRateChange() {
	if m == nil {
		return
	}
	m.rateChanges.Inc()
}

// IncMaxOutstandingChange counts one in-flight cap change.
func (m *ControlMetrics) IncMaxOutstandingChange() {
	if m == nil {
		return
	}
	m.capChanges.Inc()
}

// IncOverrideWrite counts one configuration override write.
func (m *ControlMetrics) IncOverrideWrite() {
	if m == nil {
		return
	}
	m.overrideWrites.Inc()
}

// IncOverrideParseFailure counts one override read that fell back to its
// default because the stored value did not parse.
func (m *ControlMetrics) IncOverrideParseFailure() {
	if m == nil {
		return
	}
	m.overrideMisses.Inc()
}
