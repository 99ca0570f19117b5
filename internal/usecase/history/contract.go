package history

import "context"

// Repository defines the storage contract for recent searches.
type Repository interface {
	Push(ctx context.Context, userID, query string, capacity int) error
	Recent(ctx context.Context, userID string, limit int) ([]string, error)
	Clear(ctx context.Context, userID string) error
}
