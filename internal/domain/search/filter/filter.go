package filter

import (
	"fmt"
	"math"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/note"
)

// CategoryAll disables the category predicate.
const CategoryAll = "All"

// Filters is a validated candidate-filter configuration.
// Category matching is exact and case-sensitive.
type Filters struct {
	category  string
	minRating float64
	maxPrice  float64
}

// New validates and creates Filters.
// Empty category means CategoryAll. minRating is clamped to [0,5].
// maxPrice is optional (nil = no ceiling) and must be non-negative when set.
func New(category string, minRating float64, maxPrice *float64) (Filters, error) {
	if category == "" {
		category = CategoryAll
	}
	if math.IsNaN(minRating) || minRating < 0 {
		minRating = 0
	}
	if minRating > 5 {
		minRating = 5
	}
	ceiling := math.Inf(1)
	if maxPrice != nil {
		if math.IsNaN(*maxPrice) || *maxPrice < 0 {
			return Filters{}, fmt.Errorf("%w: max price must be non-negative, got %v", domain.ErrInvalidFilter, *maxPrice)
		}
		ceiling = *maxPrice
	}
	return Filters{category: category, minRating: minRating, maxPrice: ceiling}, nil
}

// None returns filters that keep every note.
func None() Filters {
	return Filters{category: CategoryAll, maxPrice: math.Inf(1)}
}

// Category returns the category constraint (CategoryAll = unconstrained).
func (f Filters) Category() string { return f.category }

// MinRating returns the minimum rating constraint.
func (f Filters) MinRating() float64 { return f.minRating }

// MaxPrice returns the price ceiling (+Inf = unconstrained).
func (f Filters) MaxPrice() float64 { return f.maxPrice }

// Match reports whether a note passes all three predicates.
// The predicates are independent and order-insensitive.
func (f Filters) Match(n *note.Note) bool {
	if f.category != CategoryAll && n.Category() != f.category {
		return false
	}
	if n.Rating() < f.minRating {
		return false
	}
	if n.Price() > f.maxPrice {
		return false
	}
	return true
}

// Apply returns the notes passing Match, preserving input order.
func (f Filters) Apply(corpus []note.Note) []note.Note {
	out := make([]note.Note, 0, len(corpus))
	for i := range corpus {
		if f.Match(&corpus[i]) {
			out = append(out, corpus[i])
		}
	}
	return out
}
