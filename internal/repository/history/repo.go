package history

import (
	"context"
	"fmt"
)

const defaultPrefix = "noterank:"

// store is the consumer interface for search history (ISP).
type store interface {
	LPush(ctx context.Context, key string, elements ...string) error
	LRem(ctx context.Context, key string, count int64, element string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/history.Repository as a capped, newest-first
// Redis list per user.
type Repo struct {
	store  store
	prefix string
}

// New creates a history repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: defaultPrefix}
}

// WithPrefix overrides the key prefix.
func (r *Repo) WithPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Push records a query as the newest entry. A repeated query moves to the
// front instead of duplicating, and the list is trimmed to capacity.
func (r *Repo) Push(ctx context.Context, userID, query string, capacity int) error {
	key := r.key(userID)
	if err := r.store.LRem(ctx, key, 0, query); err != nil {
		return fmt.Errorf("dedupe history %s: %w", userID, err)
	}
	if err := r.store.LPush(ctx, key, query); err != nil {
		return fmt.Errorf("push history %s: %w", userID, err)
	}
	if err := r.store.LTrim(ctx, key, 0, int64(capacity)-1); err != nil {
		return fmt.Errorf("trim history %s: %w", userID, err)
	}
	return nil
}

// Recent returns up to limit queries, newest first.
func (r *Repo) Recent(ctx context.Context, userID string, limit int) ([]string, error) {
	entries, err := r.store.LRange(ctx, r.key(userID), 0, int64(limit)-1)
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", userID, err)
	}
	return entries, nil
}

// Clear drops the user's history.
func (r *Repo) Clear(ctx context.Context, userID string) error {
	if err := r.store.Del(ctx, r.key(userID)); err != nil {
		return fmt.Errorf("clear history %s: %w", userID, err)
	}
	return nil
}

func (r *Repo) key(userID string) string { return r.prefix + "history:" + userID }
