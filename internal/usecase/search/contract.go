package search

import (
	"context"

	"github.com/inkwell-market/noterank/internal/domain/note"
	engagementrepo "github.com/inkwell-market/noterank/internal/repository/engagement"
)

// CorpusReader loads the rankable corpus.
type CorpusReader interface {
	All(ctx context.Context) ([]note.Note, error)
}

// CounterReader overlays live engagement counters onto the corpus.
type CounterReader interface {
	GetMulti(ctx context.Context, noteIDs []string) ([]engagementrepo.Counters, error)
}

// Signaler resolves the per-user personalization signal.
type Signaler interface {
	SignalFor(ctx context.Context, userID string) (func(category string) float64, error)
}

// HistoryRecorder appends executed queries to the user's recent searches.
type HistoryRecorder interface {
	Record(ctx context.Context, userID, query string) error
}
