package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSearchMetrics_ObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSearch(reg)

	m.ObserveSearch("relevance", "", 120, 3*time.Millisecond)
	m.ObserveSearch("relevance", "few_results", 120, 2*time.Millisecond)
	m.ObserveSearch("price_low", "low_confidence", 120, 1*time.Millisecond)

	if got := testutil.ToFloat64(m.searchesTotal.WithLabelValues("relevance")); got != 2 {
		t.Errorf("searches_total{relevance} = %f, want 2", got)
	}
	if got := testutil.ToFloat64(m.searchesTotal.WithLabelValues("price_low")); got != 1 {
		t.Errorf("searches_total{price_low} = %f, want 1", got)
	}
	if got := testutil.ToFloat64(m.fallbackTotal.WithLabelValues("few_results")); got != 1 {
		t.Errorf("fallback_total{few_results} = %f, want 1", got)
	}
	if got := testutil.ToFloat64(m.fallbackTotal.WithLabelValues("low_confidence")); got != 1 {
		t.Errorf("fallback_total{low_confidence} = %f, want 1", got)
	}

	if got := testutil.CollectAndCount(m.corpusSize); got == 0 {
		t.Error("expected corpus size observations")
	}
	if got := testutil.CollectAndCount(m.rankingSeconds); got == 0 {
		t.Error("expected ranking duration observations")
	}
}

func TestSearchMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Search
	m.ObserveSearch("relevance", "few_results", 10, time.Millisecond)
}

func TestSearchMetrics_SeparateRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := NewSearch(prometheus.NewRegistry())
	b := NewSearch(prometheus.NewRegistry())

	a.ObserveSearch("relevance", "", 1, time.Millisecond)
	if got := testutil.ToFloat64(b.searchesTotal.WithLabelValues("relevance")); got != 0 {
		t.Errorf("instances share state: %f", got)
	}
}
