package personalization

import "context"

// Repository defines the storage contract for per-user affinity counts.
type Repository interface {
	Incr(ctx context.Context, userID, category string, weight int) error
	Counts(ctx context.Context, userID string) (map[string]int, error)
	Clear(ctx context.Context, userID string) error
}
