package noterank

import (
	"context"
	"fmt"

	"github.com/inkwell-market/noterank/internal/domain/search/filter"
	"github.com/inkwell-market/noterank/internal/domain/search/request"
	"github.com/inkwell-market/noterank/internal/domain/search/result"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
	searchuc "github.com/inkwell-market/noterank/internal/usecase/search"
)

// SearchService executes ranking queries against the catalog.
type SearchService struct {
	svc *searchuc.Service
}

// Query runs a search and returns the ranked page. When the primary page is
// empty or low-confidence, SearchResult.Fallback carries the trending notes.
func (s *SearchService) Query(
	ctx context.Context, query string, opts *SearchOptions,
) (SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	filters, err := filter.New(opts.Category, opts.MinRating, opts.MaxPrice)
	if err != nil {
		return SearchResult{}, fmt.Errorf("query: %w", err)
	}

	req, err := request.New(
		query, filters, sortkey.Key(opts.Sort), opts.PageSize, opts.UserID,
	)
	if err != nil {
		return SearchResult{}, fmt.Errorf("query: %w", err)
	}

	resp, err := s.svc.Search(ctx, &req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("query: %w", err)
	}
	return SearchResult{
		Results:        fromResults(resp.Results),
		Fallback:       fromResults(resp.Fallback),
		FallbackReason: string(resp.FallbackReason),
	}, nil
}

// Trending returns the top-n notes by popularity, text relevance ignored.
// n <= 0 selects the default fallback size.
func (s *SearchService) Trending(ctx context.Context, n int) ([]ScoredNote, error) {
	results, err := s.svc.Trending(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	return fromResults(results), nil
}

func fromResults(results []result.Result) []ScoredNote {
	if len(results) == 0 {
		return nil
	}
	out := make([]ScoredNote, len(results))
	for i := range results {
		b := results[i].Breakdown()
		out[i] = ScoredNote{
			Note: fromDomainNote(results[i].Note()),
			Scores: Scores{
				ContentSimilarity: b.ContentSimilarity,
				Popularity:        b.Popularity,
				Recency:           b.Recency,
				Creator:           b.Creator,
				Personalization:   b.Personalization,
				Final:             b.Final,
			},
		}
	}
	return out
}
