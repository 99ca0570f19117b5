package catalog

import (
	"context"

	"github.com/inkwell-market/noterank/internal/domain/note"
)

// Repository defines the storage contract for the note catalog.
type Repository interface {
	Upsert(ctx context.Context, n *note.Note) (created bool, err error)
	Get(ctx context.Context, id string) (note.Note, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, cursor string, limit int) ([]note.Note, string, error)
	Count(ctx context.Context) (int, error)
}

// EngagementResetter drops telemetry counters when a note is deleted.
type EngagementResetter interface {
	Reset(ctx context.Context, noteID string) error
}
