package affinity

import (
	"context"
	"fmt"
	"strconv"
)

const defaultPrefix = "noterank:"

// store is the consumer interface for affinity counters (ISP).
type store interface {
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/personalization.Repository. Per-user category
// interaction counts live in one hash keyed by user.
type Repo struct {
	store  store
	prefix string
}

// New creates an affinity repository.
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

// Incr adds weight to a user's interaction count for a category.
func (r *Repo) Incr(ctx context.Context, userID, category string, weight int) error {
	if category == "" {
		return nil
	}
	if _, err := r.store.HIncrBy(ctx, r.key(userID), category, int64(weight)); err != nil {
		return fmt.Errorf("incr affinity %s/%s: %w", userID, category, err)
	}
	return nil
}

// Counts returns the user's per-category interaction counts. Missing users
// read as an empty map.
func (r *Repo) Counts(ctx context.Context, userID string) (map[string]int, error) {
	m, err := r.store.HGetAll(ctx, r.key(userID))
	if err != nil {
		return nil, fmt.Errorf("read affinity %s: %w", userID, err)
	}
	counts := make(map[string]int, len(m))
	for category, v := range m {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			continue
		}
		counts[category] = n
	}
	return counts, nil
}

// Clear drops the user's affinity profile.
func (r *Repo) Clear(ctx context.Context, userID string) error {
	if err := r.store.Del(ctx, r.key(userID)); err != nil {
		return fmt.Errorf("clear affinity %s: %w", userID, err)
	}
	return nil
}

func (r *Repo) key(userID string) string { return r.prefix + "aff:" + userID }
