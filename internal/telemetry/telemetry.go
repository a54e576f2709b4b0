package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the chat service. They are
// registered on the registry passed in, so tests can build isolated sets.
type Metrics struct {
	ChatRequests     *prometheus.CounterVec
	FetchFailures    *prometheus.CounterVec
	CacheHits        prometheus.Counter
	UnansweredLogged prometheus.Counter
	ResolveSeconds   prometheus.Histogram
}

// New registers and returns the service metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Chat resolutions by answer source.",
		}, []string{"source"}),
		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "page_fetch_failures_total",
			Help: "Allow-listed page fetches that failed.",
		}, []string{"page"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "page_cache_hits_total",
			Help: "Page fetches served from the document cache.",
		}),
		UnansweredLogged: factory.NewCounter(prometheus.CounterOpts{
			Name: "unanswered_logged_total",
			Help: "Questions reported to the unanswered log.",
		}),
		ResolveSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chat_resolve_seconds",
			Help:    "End-to-end resolution latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
