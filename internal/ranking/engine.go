package ranking

import (
	"time"

	"github.com/inkwell-market/noterank/internal/domain/note"
	"github.com/inkwell-market/noterank/internal/domain/search/request"
	"github.com/inkwell-market/noterank/internal/domain/search/result"
)

// SignalFunc resolves the personalization signal for one note. The engine
// clamps the returned value to [0, 0.5); a nil SignalFunc means anonymous
// scoring (signal 0 everywhere).
type SignalFunc func(n *note.Note) float64

// Engine runs the full ranking pipeline: candidate filter, scorer, ranker,
// fallback selector. It holds no mutable state and is safe for concurrent
// use across requests.
type Engine struct {
	scorer *Scorer
}

// NewEngine creates an engine with the given factor weights.
func NewEngine(w Weights) *Engine {
	return &Engine{scorer: NewScorer(w)}
}

// Search ranks a corpus against a request.
// Returns the primary page, the trending fallback (empty unless triggered),
// and the fallback reason. An empty corpus yields empty lists, not an error.
func (e *Engine) Search(
	corpus []note.Note, req *request.Request, signal SignalFunc, now time.Time,
) (results, fallback []result.Result, reason FallbackReason) {
	candidates := req.Filters().Apply(corpus)

	q := ParseQuery(req.Query())
	scored := make([]result.Result, len(candidates))
	for i := range candidates {
		var p float64
		if signal != nil {
			p = signal(&candidates[i])
		}
		scored[i] = e.scorer.Score(&q, &candidates[i], p, now)
	}

	// The fallback decision looks at all quality results, not the page:
	// a small pageSize must not fake a thin result set.
	ranked := rank(scored, req.SortBy())
	need, reason := NeedsFallback(ranked)
	if need {
		fallback = e.Trending(corpus, FallbackSize, now)
	}
	return truncate(ranked, req.PageSize()), fallback, reason
}

// Trending scores the full corpus with text relevance ignored and returns
// the top n notes by popularity.
func (e *Engine) Trending(corpus []note.Note, n int, now time.Time) []result.Result {
	scored := make([]result.Result, len(corpus))
	for i := range corpus {
		scored[i] = e.scorer.ScoreTrending(&corpus[i], now)
	}
	return SelectTrending(scored, n)
}
