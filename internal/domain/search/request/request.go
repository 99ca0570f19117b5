package request

import (
	"fmt"
	"strings"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/search/filter"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength  = 1024
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Request is a validated search query.
// An empty query is valid: every note scores zero content similarity and the
// trending fallback takes over.
type Request struct {
	query    string
	filters  filter.Filters
	sortBy   sortkey.Key
	pageSize int
	userID   string
}

// New validates and normalizes search parameters.
// Defaults: sort=relevance, pageSize=10. The query is trimmed; an empty
// result after trimming is permitted.
func New(
	query string,
	filters filter.Filters,
	sortBy sortkey.Key,
	pageSize int,
	userID string,
) (Request, error) {
	query = strings.TrimSpace(query)
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if sortBy == "" {
		sortBy = sortkey.Relevance
	}
	if !sortBy.IsValid() {
		return Request{}, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidRequest, sortBy)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Request{
		query:    query,
		filters:  filters,
		sortBy:   sortBy,
		pageSize: pageSize,
		userID:   userID,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Filters returns the candidate-filter configuration.
func (r *Request) Filters() filter.Filters { return r.filters }

// SortBy returns the result ordering strategy.
func (r *Request) SortBy() sortkey.Key { return r.sortBy }

// PageSize returns the maximum primary results to return.
func (r *Request) PageSize() int { return r.pageSize }

// UserID returns the requesting user (empty = anonymous).
func (r *Request) UserID() string { return r.userID }
