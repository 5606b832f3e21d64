package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panchang_provider_calls_total",
			Help: "Weather provider calls by provider and outcome",
		},
		[]string{"provider", "status"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "panchang_provider_latency_seconds",
			Help:    "Weather provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panchang_fallbacks_total",
			Help: "Primary-to-fallback transitions by failure kind",
		},
		[]string{"reason"},
	)

	SuggestionCallsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "panchang_suggestion_calls_total",
			Help: "City suggestion calls issued to the AI provider",
		},
	)

	InsightFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "panchang_insight_fallbacks_total",
			Help: "Insight generations that fell back to the static default",
		},
	)
)

// ObserveProviderLatency starts a latency timer for one provider call.
func ObserveProviderLatency(provider string) *prometheus.Timer {
	return prometheus.NewTimer(ProviderLatency.WithLabelValues(provider))
}
