package ranking

import (
	"testing"

	"github.com/inkwell-market/noterank/internal/domain/search/result"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
)

func scoredResult(p noteParams, b result.Breakdown) result.Result {
	return result.New(makeNote(p), b)
}

func resultIDs(rs []result.Result) []string {
	ids := make([]string, len(rs))
	for i := range rs {
		ids[i] = rs[i].Note().ID()
	}
	return ids
}

func assertOrder(t *testing.T, rs []result.Result, want ...string) {
	t.Helper()
	got := resultIDs(rs)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// --- Rank ---

func TestRank_RelevanceExcludesZeroSimilarity(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "match"}, result.Breakdown{ContentSimilarity: 0.5, Final: 0.6}),
		scoredResult(noteParams{id: "nomatch"}, result.Breakdown{Final: 0.9}),
	}

	ranked := Rank(scored, sortkey.Relevance, 10)
	assertOrder(t, ranked, "match")
}

func TestRank_RelevanceOrdersByFinalDescending(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "mid"}, result.Breakdown{ContentSimilarity: 0.3, Final: 0.5}),
		scoredResult(noteParams{id: "high"}, result.Breakdown{ContentSimilarity: 0.9, Final: 0.9}),
		scoredResult(noteParams{id: "low"}, result.Breakdown{ContentSimilarity: 0.1, Final: 0.2}),
	}

	ranked := Rank(scored, sortkey.Relevance, 10)
	assertOrder(t, ranked, "high", "mid", "low")
}

func TestRank_TiesPreserveInputOrder(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "first"}, result.Breakdown{ContentSimilarity: 0.5, Final: 0.5}),
		scoredResult(noteParams{id: "second"}, result.Breakdown{ContentSimilarity: 0.5, Final: 0.5}),
		scoredResult(noteParams{id: "third"}, result.Breakdown{ContentSimilarity: 0.5, Final: 0.5}),
	}

	ranked := Rank(scored, sortkey.Relevance, 10)
	assertOrder(t, ranked, "first", "second", "third")
}

func TestRank_TruncatesToPageSize(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "a"}, result.Breakdown{ContentSimilarity: 0.9, Final: 0.9}),
		scoredResult(noteParams{id: "b"}, result.Breakdown{ContentSimilarity: 0.8, Final: 0.8}),
		scoredResult(noteParams{id: "c"}, result.Breakdown{ContentSimilarity: 0.7, Final: 0.7}),
	}

	ranked := Rank(scored, sortkey.Relevance, 2)
	assertOrder(t, ranked, "a", "b")
}

func TestRank_PriceLow(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "p30", price: 30}, result.Breakdown{}),
		scoredResult(noteParams{id: "p10", price: 10}, result.Breakdown{}),
		scoredResult(noteParams{id: "p20", price: 20}, result.Breakdown{}),
	}

	ranked := Rank(scored, sortkey.PriceLow, 10)
	assertOrder(t, ranked, "p10", "p20", "p30")
}

func TestRank_PriceHigh(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "p10", price: 10}, result.Breakdown{}),
		scoredResult(noteParams{id: "p30", price: 30}, result.Breakdown{}),
		scoredResult(noteParams{id: "p20", price: 20}, result.Breakdown{}),
	}

	ranked := Rank(scored, sortkey.PriceHigh, 10)
	assertOrder(t, ranked, "p30", "p20", "p10")
}

func TestRank_NonRelevanceKeepsZeroSimilarity(t *testing.T) {
	// Zero text match only disqualifies under relevance ordering.
	scored := []result.Result{
		scoredResult(noteParams{id: "a", price: 5}, result.Breakdown{}),
		scoredResult(noteParams{id: "b", price: 3}, result.Breakdown{}),
	}

	ranked := Rank(scored, sortkey.PriceLow, 10)
	assertOrder(t, ranked, "b", "a")
}

func TestRank_Rating(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "r3", rating: 3}, result.Breakdown{}),
		scoredResult(noteParams{id: "r5", rating: 5}, result.Breakdown{}),
		scoredResult(noteParams{id: "r4", rating: 4}, result.Breakdown{}),
	}

	ranked := Rank(scored, sortkey.Rating, 10)
	assertOrder(t, ranked, "r5", "r4", "r3")
}

func TestRank_Popularity(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "cold"}, result.Breakdown{Popularity: 0.1}),
		scoredResult(noteParams{id: "hot"}, result.Breakdown{Popularity: 0.9}),
	}

	ranked := Rank(scored, sortkey.Popularity, 10)
	assertOrder(t, ranked, "hot", "cold")
}

func TestRank_Recency(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "old"}, result.Breakdown{Recency: 0.2}),
		scoredResult(noteParams{id: "fresh"}, result.Breakdown{Recency: 1.0}),
	}

	ranked := Rank(scored, sortkey.Recency, 10)
	assertOrder(t, ranked, "fresh", "old")
}

// --- NeedsFallback ---

func TestNeedsFallback_FewResults(t *testing.T) {
	ranked := []result.Result{
		scoredResult(noteParams{id: "a"}, result.Breakdown{ContentSimilarity: 0.9, Final: 0.9}),
		scoredResult(noteParams{id: "b"}, result.Breakdown{ContentSimilarity: 0.8, Final: 0.8}),
	}

	need, reason := NeedsFallback(ranked)
	if !need {
		t.Fatal("expected fallback for fewer than 3 results")
	}
	if reason != FallbackFewResults {
		t.Errorf("reason = %q, want %q", reason, FallbackFewResults)
	}
}

func TestNeedsFallback_Empty(t *testing.T) {
	need, reason := NeedsFallback(nil)
	if !need || reason != FallbackFewResults {
		t.Errorf("need = %v, reason = %q", need, reason)
	}
}

func TestNeedsFallback_LowConfidence(t *testing.T) {
	ranked := []result.Result{
		scoredResult(noteParams{id: "a"}, result.Breakdown{Final: 0.35}),
		scoredResult(noteParams{id: "b"}, result.Breakdown{Final: 0.3}),
		scoredResult(noteParams{id: "c"}, result.Breakdown{Final: 0.2}),
	}

	need, reason := NeedsFallback(ranked)
	if !need {
		t.Fatal("expected fallback when top score below threshold")
	}
	if reason != FallbackLowConfidence {
		t.Errorf("reason = %q, want %q", reason, FallbackLowConfidence)
	}
}

func TestNeedsFallback_HealthyResults(t *testing.T) {
	ranked := []result.Result{
		scoredResult(noteParams{id: "a"}, result.Breakdown{Final: 0.8}),
		scoredResult(noteParams{id: "b"}, result.Breakdown{Final: 0.6}),
		scoredResult(noteParams{id: "c"}, result.Breakdown{Final: 0.5}),
	}

	need, reason := NeedsFallback(ranked)
	if need {
		t.Errorf("unexpected fallback: reason = %q", reason)
	}
}

// --- SelectTrending ---

func TestSelectTrending_TopByPopularity(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "c"}, result.Breakdown{Popularity: 0.3}),
		scoredResult(noteParams{id: "a"}, result.Breakdown{Popularity: 0.9}),
		scoredResult(noteParams{id: "d"}, result.Breakdown{Popularity: 0.1}),
		scoredResult(noteParams{id: "b"}, result.Breakdown{Popularity: 0.7}),
	}

	trending := SelectTrending(scored, 3)
	assertOrder(t, trending, "a", "b", "c")
}

func TestSelectTrending_ShortCorpus(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "only"}, result.Breakdown{Popularity: 0.5}),
	}

	trending := SelectTrending(scored, 3)
	assertOrder(t, trending, "only")
}

func TestSelectTrending_DoesNotMutateInput(t *testing.T) {
	scored := []result.Result{
		scoredResult(noteParams{id: "low"}, result.Breakdown{Popularity: 0.1}),
		scoredResult(noteParams{id: "high"}, result.Breakdown{Popularity: 0.9}),
	}

	SelectTrending(scored, 2)
	if scored[0].Note().ID() != "low" {
		t.Error("input slice was reordered")
	}
}
