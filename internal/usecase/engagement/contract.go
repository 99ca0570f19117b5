package engagement

import (
	"context"

	"github.com/inkwell-market/noterank/internal/domain/note"
	engagementrepo "github.com/inkwell-market/noterank/internal/repository/engagement"
)

// CounterRepository defines the storage contract for engagement counters.
type CounterRepository interface {
	IncrView(ctx context.Context, noteID string) (int, error)
	IncrPurchase(ctx context.Context, noteID string) (int, error)
	Get(ctx context.Context, noteID string) (engagementrepo.Counters, error)
	GetMulti(ctx context.Context, noteIDs []string) ([]engagementrepo.Counters, error)
}

// NoteReader resolves the note a recorded event refers to.
type NoteReader interface {
	Get(ctx context.Context, id string) (note.Note, error)
}

// Profiler accumulates per-user taste from events. Optional.
type Profiler interface {
	RecordView(ctx context.Context, userID, category string) error
	RecordPurchase(ctx context.Context, userID, category string) error
}
