// Package metrics exposes prometheus instrumentation for the scoring
// surfaces. Registration happens once at startup.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_requests_total",
			Help: "Total scoring requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	pathBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillpath_path_build_seconds",
			Help:    "Learning path build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	rulesLoaded = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skillpath_rules_loaded",
			Help: "Association rules loaded per store",
		},
		[]string{"store"},
	)

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_cache_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, pathBuildDuration, rulesLoaded, cacheHits)
	})
}

func RecordRequest(operation, outcome string) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
}

func ObservePathBuild(d time.Duration) {
	pathBuildDuration.Observe(d.Seconds())
}

func SetRulesLoaded(store string, count int) {
	rulesLoaded.WithLabelValues(store).Set(float64(count))
}

func RecordCacheLookup(hit bool) {
	if hit {
		cacheHits.WithLabelValues("hit").Inc()
		return
	}
	cacheHits.WithLabelValues("miss").Inc()
}
