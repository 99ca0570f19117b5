package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/inkwell-market/noterank/internal/domain/note"
	"github.com/inkwell-market/noterank/internal/domain/search/result"
)

// Weights combines the per-factor sub-scores into one final score.
// They sum to 1.0 so a fully-saturated note scores exactly 1.
type Weights struct {
	ContentSimilarity float64
	Popularity        float64
	Recency           float64
	Creator           float64
	Personalization   float64
}

// DefaultWeights is the production factor mix.
var DefaultWeights = Weights{
	ContentSimilarity: 0.35,
	Popularity:        0.25,
	Recency:           0.15,
	Creator:           0.15,
	Personalization:   0.10,
}

// Raw content-match bonuses, on a 0-100+ scale divided by 100 at the end.
const (
	phraseBonus   = 100.0 // full query appears in the searchable text
	titleBonus    = 75.0  // full query appears in the title
	categoryBonus = 50.0  // full query appears in the category
	tokenBonus    = 20.0  // per query token found in the searchable text
	semanticBonus = 15.0  // per token, scaled by the semantic entry weight
	rawScale      = 100.0
)

// Popularity sub-factor mix and saturation points.
const (
	purchaseWeight = 0.5
	ratingWeight   = 0.3
	viewWeight     = 0.2

	purchaseSaturation = 100.0  // ln(1+n)/ln(101) saturates near 100 purchases
	viewSaturation     = 1000.0 // saturates near 1000 views
	ratingConfidence   = 10.0   // reviews needed for full rating confidence
)

// verifiedBonus multiplies creator trust for verified creators. The product
// is intentionally not clamped to 1, matching long-standing ranking behavior.
const verifiedBonus = 1.2

// maxPersonalization is the exclusive upper bound of the personalization
// signal.
const maxPersonalization = 0.5

// Query is a pre-parsed search query shared across all candidates of one
// request.
type Query struct {
	phrase string
	tokens []string
}

// ParseQuery lowercases and tokenizes a query. Tokens are whitespace-split
// words longer than one character.
func ParseQuery(q string) Query {
	phrase := strings.ToLower(strings.TrimSpace(q))
	var tokens []string
	for _, w := range strings.Fields(phrase) {
		if len(w) > 1 {
			tokens = append(tokens, w)
		}
	}
	return Query{phrase: phrase, tokens: tokens}
}

// IsEmpty reports whether the query carries no matchable text.
func (q *Query) IsEmpty() bool { return q.phrase == "" }

// Scorer computes per-note sub-scores. It is stateless apart from its
// configuration and safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given factor weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the full sub-score breakdown for one note.
// personalization is the caller-resolved affinity signal; it is clamped to
// [0, 0.5). now anchors the recency computation.
func (s *Scorer) Score(q *Query, n *note.Note, personalization float64, now time.Time) result.Result {
	b := result.Breakdown{
		ContentSimilarity: s.contentSimilarity(q, n),
		Popularity:        popularityScore(n),
		Recency:           recencyScore(n.AgeInDays(now)),
		Creator:           creatorScore(n),
		Personalization:   clampPersonalization(personalization),
	}
	b.Final = s.combine(b)
	return result.New(*n, b)
}

// ScoreTrending computes a breakdown with text relevance and personalization
// forced to zero. Used for the trending fallback list.
func (s *Scorer) ScoreTrending(n *note.Note, now time.Time) result.Result {
	b := result.Breakdown{
		Popularity: popularityScore(n),
		Recency:    recencyScore(n.AgeInDays(now)),
		Creator:    creatorScore(n),
	}
	b.Final = s.combine(b)
	return result.New(*n, b)
}

// combine folds the breakdown into the final weighted score, clamped to 1
// so the unclamped creator bonus cannot push the total out of range.
func (s *Scorer) combine(b result.Breakdown) float64 {
	final := s.weights.ContentSimilarity*b.ContentSimilarity +
		s.weights.Popularity*b.Popularity +
		s.weights.Recency*b.Recency +
		s.weights.Creator*b.Creator +
		s.weights.Personalization*b.Personalization
	return math.Min(final, 1.0)
}

// contentSimilarity accumulates the raw match bonuses and normalizes to [0,1].
// The bonuses are not mutually exclusive: a query matching the title also
// matches the searchable text, so both apply.
func (s *Scorer) contentSimilarity(q *Query, n *note.Note) float64 {
	if q.IsEmpty() {
		return 0
	}

	title := strings.ToLower(n.Title())
	category := strings.ToLower(n.Category())
	searchable := title + " " + strings.ToLower(n.Preview()) + " " +
		category + " " + strings.ToLower(n.Author())

	var raw float64
	if strings.Contains(searchable, q.phrase) {
		raw += phraseBonus
	}
	if strings.Contains(title, q.phrase) {
		raw += titleBonus
	}
	if strings.Contains(category, q.phrase) {
		raw += categoryBonus
	}
	for _, tok := range q.tokens {
		if strings.Contains(searchable, tok) {
			raw += tokenBonus
		}
		raw += semanticBonus * expansionWeight(tok)
	}

	return math.Min(raw/rawScale, 1.0)
}

// popularityScore blends log-dampened engagement counters with a
// review-confidence-dampened rating.
func popularityScore(n *note.Note) float64 {
	purchase := math.Min(1.0, math.Log(1+float64(n.PurchaseCount()))/math.Log(purchaseSaturation+1))
	view := math.Min(1.0, math.Log(1+float64(n.ViewCount()))/math.Log(viewSaturation+1))
	rating := (n.Rating() / 5.0) * math.Min(1.0, float64(n.ReviewCount())/ratingConfidence)

	return purchaseWeight*purchase + ratingWeight*rating + viewWeight*view
}

// recencyScore is a step function over the note age.
func recencyScore(ageInDays int) float64 {
	switch {
	case ageInDays <= 7:
		return 1.0
	case ageInDays <= 30:
		return 0.8
	case ageInDays <= 90:
		return 0.6
	case ageInDays <= 180:
		return 0.4
	default:
		return 0.2
	}
}

// creatorScore applies the verified bonus on top of creator trust.
func creatorScore(n *note.Note) float64 {
	if n.VerifiedCreator() {
		return n.CreatorTrust() * verifiedBonus
	}
	return n.CreatorTrust()
}

func clampPersonalization(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= maxPersonalization {
		return math.Nextafter(maxPersonalization, 0)
	}
	return v
}
