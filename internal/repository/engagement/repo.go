package engagement

import (
	"context"
	"fmt"
	"strconv"
)

const defaultPrefix = "noterank:"

// Hash fields for the per-note counter hash.
const (
	fieldViews     = "views"
	fieldPurchases = "purchases"
)

// store is the consumer interface for engagement counters (ISP).
type store interface {
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
}

// Counters holds live engagement counters for one note.
type Counters struct {
	Views     int
	Purchases int
}

// Repo implements usecase/engagement.Repository. Counters live in a hash
// per note so both fields travel in one HGETALL.
type Repo struct {
	store  store
	prefix string
}

// New creates an engagement repository.
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

// IncrView increments the view counter and returns the new value.
func (r *Repo) IncrView(ctx context.Context, noteID string) (int, error) {
	n, err := r.store.HIncrBy(ctx, r.key(noteID), fieldViews, 1)
	if err != nil {
		return 0, fmt.Errorf("incr views %s: %w", noteID, err)
	}
	return int(n), nil
}

// IncrPurchase increments the purchase counter and returns the new value.
func (r *Repo) IncrPurchase(ctx context.Context, noteID string) (int, error) {
	n, err := r.store.HIncrBy(ctx, r.key(noteID), fieldPurchases, 1)
	if err != nil {
		return 0, fmt.Errorf("incr purchases %s: %w", noteID, err)
	}
	return int(n), nil
}

// Get returns the counters for one note. Missing keys read as zeros.
func (r *Repo) Get(ctx context.Context, noteID string) (Counters, error) {
	m, err := r.store.HGetAll(ctx, r.key(noteID))
	if err != nil {
		return Counters{}, fmt.Errorf("get counters %s: %w", noteID, err)
	}
	return countersFromHash(m), nil
}

// GetMulti returns counters for many notes in one round-trip, positionally
// aligned with noteIDs.
func (r *Repo) GetMulti(ctx context.Context, noteIDs []string) ([]Counters, error) {
	if len(noteIDs) == 0 {
		return nil, nil
	}
	keys := make([]string, len(noteIDs))
	for i, id := range noteIDs {
		keys[i] = r.key(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get counters multi: %w", err)
	}
	out := make([]Counters, len(maps))
	for i, m := range maps {
		out[i] = countersFromHash(m)
	}
	return out, nil
}

// Reset drops the counters for one note (used when the note is deleted).
func (r *Repo) Reset(ctx context.Context, noteID string) error {
	if err := r.store.Del(ctx, r.key(noteID)); err != nil {
		return fmt.Errorf("reset counters %s: %w", noteID, err)
	}
	return nil
}

func countersFromHash(m map[string]string) Counters {
	return Counters{
		Views:     atoi(m[fieldViews]),
		Purchases: atoi(m[fieldPurchases]),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (r *Repo) key(noteID string) string { return r.prefix + "eng:" + noteID }
