package ranking

import (
	"sort"

	"github.com/inkwell-market/noterank/internal/domain/search/result"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
)

// Fallback policy constants.
const (
	// minQualityResults is the result-count floor below which the trending
	// fallback activates.
	minQualityResults = 3
	// minTopScore is the confidence floor for the best relevance result.
	minTopScore = 0.4
	// FallbackSize is the length of the trending fallback list.
	FallbackSize = 3
)

// FallbackReason explains why the trending fallback was produced.
type FallbackReason string

// Fallback reasons.
const (
	FallbackNone          FallbackReason = ""
	FallbackFewResults    FallbackReason = "few_results"
	FallbackLowConfidence FallbackReason = "low_confidence"
)

// Rank sorts scored candidates by the chosen key and truncates to pageSize.
// For relevance ordering, only quality results (content similarity > 0) are
// eligible; other keys rank every candidate. Ties preserve input order.
func Rank(scored []result.Result, sortBy sortkey.Key, pageSize int) []result.Result {
	return truncate(rank(scored, sortBy), pageSize)
}

// rank sorts every eligible candidate without truncating. The fallback
// decision reads this full list; pageSize is a presentation concern only.
func rank(scored []result.Result, sortBy sortkey.Key) []result.Result {
	eligible := scored
	if sortBy == sortkey.Relevance {
		eligible = make([]result.Result, 0, len(scored))
		for _, r := range scored {
			if r.ContentSimilarity() > 0 {
				eligible = append(eligible, r)
			}
		}
	}

	ranked := make([]result.Result, len(eligible))
	copy(ranked, eligible)
	sort.SliceStable(ranked, comparator(ranked, sortBy))
	return ranked
}

func truncate(rs []result.Result, n int) []result.Result {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}

// NeedsFallback reports whether the ranked quality results are too few or
// too weak to stand alone.
func NeedsFallback(ranked []result.Result) (bool, FallbackReason) {
	if len(ranked) < minQualityResults {
		return true, FallbackFewResults
	}
	if ranked[0].Final() < minTopScore {
		return true, FallbackLowConfidence
	}
	return false, FallbackNone
}

// SelectTrending orders candidates by descending popularity and truncates
// to n. Candidates must already be scored with text relevance ignored.
func SelectTrending(scored []result.Result, n int) []result.Result {
	trending := make([]result.Result, len(scored))
	copy(trending, scored)
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Popularity() > trending[j].Popularity()
	})
	return truncate(trending, n)
}

func comparator(rs []result.Result, sortBy sortkey.Key) func(i, j int) bool {
	switch sortBy {
	case sortkey.Popularity:
		return func(i, j int) bool { return rs[i].Popularity() > rs[j].Popularity() }
	case sortkey.Recency:
		return func(i, j int) bool { return rs[i].Breakdown().Recency > rs[j].Breakdown().Recency }
	case sortkey.Rating:
		return func(i, j int) bool { return rs[i].Note().Rating() > rs[j].Note().Rating() }
	case sortkey.PriceLow:
		return func(i, j int) bool { return rs[i].Note().Price() < rs[j].Note().Price() }
	case sortkey.PriceHigh:
		return func(i, j int) bool { return rs[i].Note().Price() > rs[j].Note().Price() }
	default:
		return func(i, j int) bool { return rs[i].Final() > rs[j].Final() }
	}
}
