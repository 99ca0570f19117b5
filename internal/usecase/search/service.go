package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/note"
	"github.com/inkwell-market/noterank/internal/domain/search/request"
	"github.com/inkwell-market/noterank/internal/domain/search/result"
	"github.com/inkwell-market/noterank/internal/logger"
	"github.com/inkwell-market/noterank/internal/ranking"
)

// MetricsRecorder observes completed searches. Optional.
type MetricsRecorder interface {
	ObserveSearch(sortKey, fallbackReason string, corpusSize int, elapsed time.Duration)
}

// Response is a completed search: the primary page plus the trending
// fallback when the primary results are absent or low-confidence.
type Response struct {
	Results        []result.Result
	Fallback       []result.Result
	FallbackReason ranking.FallbackReason
}

// Service runs the ranking pipeline against the stored corpus.
// Instances are safe for concurrent use; per-request state lives on the
// stack and in the supersession guard.
type Service struct {
	engine       *ranking.Engine
	corpus       CorpusReader
	counters     CounterReader
	signals      Signaler
	history      HistoryRecorder
	metrics      MetricsRecorder
	super        *Superseder
	trendingSize int
	now          func() time.Time
}

// New creates a search service. counters, signals and history may be nil.
func New(engine *ranking.Engine, corpus CorpusReader, counters CounterReader, signals Signaler, history HistoryRecorder) *Service {
	return &Service{
		engine:       engine,
		corpus:       corpus,
		counters:     counters,
		signals:      signals,
		history:      history,
		super:        NewSuperseder(),
		trendingSize: ranking.FallbackSize,
		now:          time.Now,
	}
}

// WithMetrics attaches a metrics recorder.
func (s *Service) WithMetrics(m MetricsRecorder) *Service {
	s.metrics = m
	return s
}

// WithTrendingSize overrides the default Trending list length used when a
// caller passes no explicit limit.
func (s *Service) WithTrendingSize(n int) *Service {
	if n > 0 {
		s.trendingSize = n
	}
	return s
}

// WithClock overrides the time source (test hook).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search executes one ranking request.
// For identified users the latest request wins: if a newer search from the
// same user starts before this one finishes, the stale one returns
// domain.ErrSuperseded instead of its (now obsolete) results.
func (s *Service) Search(ctx context.Context, req *request.Request) (Response, error) {
	start := s.now()

	var ticket Ticket
	if req.UserID() != "" {
		ticket = s.super.Begin(req.UserID())
		defer ticket.Done()
	}

	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return Response{}, err
	}

	signal, err := s.signalFunc(ctx, req.UserID())
	if err != nil {
		return Response{}, err
	}

	results, fallback, reason := s.engine.Search(corpus, req, signal, s.now())

	if req.UserID() != "" && ticket.Stale() {
		return Response{}, domain.ErrSuperseded
	}

	if s.history != nil {
		if err := s.history.Record(ctx, req.UserID(), req.Query()); err != nil {
			// History is best-effort; never fail the search over it.
			logger.FromContext(ctx).Warn("record search history failed",
				zap.String("user_id", req.UserID()), zap.Error(err))
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveSearch(string(req.SortBy()), string(reason), len(corpus), s.now().Sub(start))
	}

	return Response{Results: results, Fallback: fallback, FallbackReason: reason}, nil
}

// Trending returns the top-n notes by popularity, text relevance ignored.
// n <= 0 falls back to the configured default length.
func (s *Service) Trending(ctx context.Context, n int) ([]result.Result, error) {
	if n <= 0 {
		n = s.trendingSize
	}
	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Trending(corpus, n, s.now()), nil
}

// loadCorpus reads the full corpus and overlays live engagement counters.
// Stored counts are an ingestion-time snapshot; the telemetry counters are
// authoritative once they catch up, so the larger value wins.
func (s *Service) loadCorpus(ctx context.Context) ([]note.Note, error) {
	corpus, err := s.corpus.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if s.counters == nil || len(corpus) == 0 {
		return corpus, nil
	}

	ids := make([]string, len(corpus))
	for i := range corpus {
		ids[i] = corpus[i].ID()
	}
	live, err := s.counters.GetMulti(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load counters: %w", err)
	}

	for i := range corpus {
		purchases := max(corpus[i].PurchaseCount(), live[i].Purchases)
		views := max(corpus[i].ViewCount(), live[i].Views)
		corpus[i] = corpus[i].WithCounters(purchases, views)
	}
	return corpus, nil
}

// signalFunc adapts the personalization provider to the engine.
func (s *Service) signalFunc(ctx context.Context, userID string) (ranking.SignalFunc, error) {
	if s.signals == nil || userID == "" {
		return nil, nil
	}
	byCategory, err := s.signals.SignalFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("personalization signal: %w", err)
	}
	return func(n *note.Note) float64 {
		return byCategory(n.Category())
	}, nil
}
