package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query Prometheus metrics.
var (
	QueryTranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexidex",
			Name:      "query_translations_total",
			Help:      "Natural-language query translations by outcome",
		},
		[]string{"outcome"}, // "matched" / "no_match" / "conflict"
	)

	FilterRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexidex",
			Name:      "filter_requests_total",
			Help:      "Structured filter evaluations by outcome",
		},
		[]string{"outcome"}, // "ok" / "conflict"
	)

	StringsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lexidex",
			Name:      "strings_stored",
			Help:      "Number of analyzed strings currently stored",
		},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueryTranslationsTotal)
	prometheus.MustRegister(FilterRequestsTotal)
	prometheus.MustRegister(StringsStored)
	queryMetricsRegistered = true
}
