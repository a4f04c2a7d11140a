// Package metrics provides Prometheus-backed metrics for the gale daemon.
//
// Collection is opt-in: when InitRegistry has not been called, the typed
// constructors return nil and all observation paths are no-ops with zero
// overhead. The registry also backs the control plane's counters
// snapshot, which flattens every counter and gauge into a name-to-value
// map for operator tooling.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
)

// InitRegistry creates the process-wide metrics registry and registers
// the standard Go and process collectors. Calling it twice replaces the
// registry; only tests should do that.
func InitRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IsEnabled returns whether metrics collection is enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// GetRegistry returns the process-wide registry, or nil when metrics are
// not enabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format. When metrics are disabled it serves 404.
func Handler() http.Handler {
	reg := GetRegistry()
	if reg == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "metrics collection disabled", http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Counters gathers the registry and flattens every counter and gauge
// into a name-to-integer map. Labelled series are suffixed with their
// label values joined by dots; histogram and summary families contribute
// their sample counts under a _count suffix.
//
// When metrics are disabled the map is empty, not nil.
func Counters() (map[string]int64, error) {
	out := make(map[string]int64)

	reg := GetRegistry()
	if reg == nil {
		return out, nil
	}

	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := flatName(family.GetName(), metric)
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				out[name] = int64(metric.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				out[name] = int64(metric.GetGauge().GetValue())
			case dto.MetricType_HISTOGRAM:
				out[name+"_count"] = int64(metric.GetHistogram().GetSampleCount())
			case dto.MetricType_SUMMARY:
				out[name+"_count"] = int64(metric.GetSummary().GetSampleCount())
			}
		}
	}

	return out, nil
}

// flatName builds a flat counter name from a family name and the
// metric's label values, sorted by label name for stable output.
func flatName(name string, metric *dto.Metric) string {
	labels := metric.GetLabel()
	if len(labels) == 0 {
		return name
	}

	sorted := make([]*dto.LabelPair, len(labels))
	copy(sorted, labels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GetName() < sorted[j].GetName()
	})

	parts := make([]string, 0, len(sorted)+1)
	parts = append(parts, name)
	for _, label := range sorted {
		parts = append(parts, label.GetValue())
	}
	return strings.Join(parts, ".")
}
