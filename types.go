package noterank

import "time"

// Note is the public representation of a marketplace listing.
type Note struct {
	ID              string
	Title           string
	Author          string
	Category        string
	Preview         string
	Tags            []string
	Price           float64
	Rating          float64
	ReviewCount     int
	PurchaseCount   int
	ViewCount       int
	CreatedAt       time.Time
	VerifiedCreator bool
	CreatorTrust    float64
}

// Scores is the per-factor breakdown behind a ranking decision.
type Scores struct {
	ContentSimilarity float64
	Popularity        float64
	Recency           float64
	Creator           float64
	Personalization   float64
	Final             float64
}

// ScoredNote is a ranked search hit.
type ScoredNote struct {
	Note   Note
	Scores Scores
}

// SortKey selects the result ordering.
type SortKey string

// Supported sort keys.
const (
	SortRelevance  SortKey = "relevance"
	SortPopularity SortKey = "popularity"
	SortRecency    SortKey = "recency"
	SortRating     SortKey = "rating"
	SortPriceLow   SortKey = "price_low"
	SortPriceHigh  SortKey = "price_high"
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Category filters candidates to an exact category ("" or "All" = any).
	Category string
	// MinRating is the rating floor, clamped to [0,5].
	MinRating float64
	// MaxPrice is the price ceiling (nil = no ceiling).
	MaxPrice *float64
	Sort     SortKey
	PageSize int
	// UserID enables personalization, history recording, and
	// latest-request-wins supersession.
	UserID string
}

// SearchResult is a completed search.
type SearchResult struct {
	Results []ScoredNote
	// Fallback holds trending notes when the primary results are absent
	// or low-confidence.
	Fallback       []ScoredNote
	FallbackReason string
}
