package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search holds the ranking-pipeline metrics. Created once in the
// composition root and registered explicitly (no init()).
type Search struct {
	searchesTotal  *prometheus.CounterVec
	fallbackTotal  *prometheus.CounterVec
	corpusSize     prometheus.Histogram
	rankingSeconds prometheus.Histogram
}

// NewSearch creates and registers the ranking metrics.
func NewSearch(reg prometheus.Registerer) *Search {
	m := &Search{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noterank",
				Name:      "searches_total",
				Help:      "Total number of search requests by sort key",
			},
			[]string{"sort"},
		),
		fallbackTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "noterank",
				Name:      "search_fallback_total",
				Help:      "Trending fallback activations by reason",
			},
			[]string{"reason"},
		),
		corpusSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "noterank",
				Name:      "search_corpus_size",
				Help:      "Corpus size observed per search request",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		rankingSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "noterank",
				Name:      "search_ranking_seconds",
				Help:      "Time spent in the ranking pipeline",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
	}
	reg.MustRegister(m.searchesTotal, m.fallbackTotal, m.corpusSize, m.rankingSeconds)
	return m
}

// ObserveSearch records one completed search request.
func (m *Search) ObserveSearch(sortKey string, fallbackReason string, corpusSize int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(sortKey).Inc()
	if fallbackReason != "" {
		m.fallbackTotal.WithLabelValues(fallbackReason).Inc()
	}
	m.corpusSize.Observe(float64(corpusSize))
	m.rankingSeconds.Observe(elapsed.Seconds())
}
