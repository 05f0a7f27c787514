package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "price_checker"

// Registry holds the service collectors together with the Go runtime and process
// collectors. It is what the metrics server exposes.
var Registry = prometheus.NewRegistry() //nolint:gochecknoglobals

var (
	// UpstreamRequestsTotal counts provider lookups by outcome (found, absent, failed).
	UpstreamRequestsTotal = prometheus.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of provider lookups",
		},
		[]string{"provider", "outcome"},
	)

	// UpstreamRequestDuration is a histogram of provider lookup latencies.
	UpstreamRequestDuration = prometheus.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of provider lookups",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// SearchRequestsTotal counts aggregated searches by result (ok, empty, failed).
	SearchRequestsTotal = prometheus.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of aggregated searches",
		},
		[]string{"result"},
	)
)

func init() { //nolint:gochecknoinits
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		SearchRequestsTotal,
	)
}

func RecordUpstreamRequest(provider, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(provider, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func RecordSearch(result string) {
	SearchRequestsTotal.WithLabelValues(result).Inc()
}
