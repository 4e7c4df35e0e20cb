package leaderboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the core's observability events: cache effectiveness,
// per-stage latency, and store failures. The sink is whatever
// registerer the caller hands in.
type Metrics struct {
	CacheHits     *prometheus.CounterVec
	CacheMisses   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	StoreErrors   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_cache_hits_total",
			Help: "Leaderboard queries served from the result cache.",
		}, []string{"scope"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_cache_misses_total",
			Help: "Leaderboard queries that had to be recomputed.",
		}, []string{"scope"}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leaderboard_stage_duration_seconds",
			Help:    "Latency of each stage of the ranking pipeline.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		StoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "leaderboard_store_errors_total",
			Help: "Failures talking to the score or profile store.",
		}),
	}
}
