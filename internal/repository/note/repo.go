package note

import (
	"context"
	"fmt"
	"sort"

	"github.com/inkwell-market/noterank/internal/domain"
	domnote "github.com/inkwell-market/noterank/internal/domain/note"
)

const defaultPrefix = "noterank:"

// store is the consumer interface for notes (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
}

// Repo implements usecase/catalog.Repository and usecase/search.CorpusReader.
type Repo struct {
	store  store
	prefix string
}

// New creates a note repository.
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

// Upsert creates or updates a note. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, n *domnote.Note) (bool, error) {
	key := r.noteKey(n.ID())

	fields, err := noteToHash(n)
	if err != nil {
		return false, fmt.Errorf("encode note %s: %w", n.ID(), err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, fields); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, r.indexKey(), n.ID()); err != nil {
		return false, fmt.Errorf("index %s: %w", n.ID(), err)
	}

	return !exists, nil
}

// Get returns a note by ID.
func (r *Repo) Get(ctx context.Context, id string) (domnote.Note, error) {
	m, err := r.store.HGetAll(ctx, r.noteKey(id))
	if err != nil {
		return domnote.Note{}, fmt.Errorf("hgetall %s: %w", id, err)
	}
	if len(m) == 0 {
		return domnote.Note{}, domain.ErrNoteNotFound
	}
	return noteFromHash(id, m)
}

// Delete removes a note and its index entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, r.noteKey(id))
	if err != nil {
		return fmt.Errorf("check exists %s: %w", id, err)
	}
	if !exists {
		return domain.ErrNoteNotFound
	}
	if err := r.store.Del(ctx, r.noteKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", id, err)
	}
	if err := r.store.SRem(ctx, r.indexKey(), id); err != nil {
		return fmt.Errorf("deindex %s: %w", id, err)
	}
	return nil
}

// Count returns the number of stored notes.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SCard(ctx, r.indexKey())
	if err != nil {
		return 0, fmt.Errorf("scard: %w", err)
	}
	return int(n), nil
}

// All loads the full corpus in a stable order (ascending ID). The corpus
// order defines the tie-break for equal ranking scores.
func (r *Repo) All(ctx context.Context) ([]domnote.Note, error) {
	ids, err := r.store.SMembers(ctx, r.indexKey())
	if err != nil {
		return nil, fmt.Errorf("smembers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.noteKey(id)
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	notes := make([]domnote.Note, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			// Index entry without a hash: note deleted mid-read, skip.
			continue
		}
		n, err := noteFromHash(ids[i], m)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// List returns a page of notes with cursor-based pagination over the
// ID-ordered corpus. The cursor is the last ID of the previous page.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domnote.Note, string, error) {
	if limit <= 0 {
		limit = 20
	}

	notes, err := r.All(ctx)
	if err != nil {
		return nil, "", err
	}

	start := 0
	if cursor != "" {
		start = sort.Search(len(notes), func(i int) bool { return notes[i].ID() > cursor })
	}

	end := start + limit
	next := ""
	if end < len(notes) {
		next = notes[end-1].ID()
	} else {
		end = len(notes)
	}
	return notes[start:end], next, nil
}

func (r *Repo) noteKey(id string) string { return r.prefix + "note:" + id }
func (r *Repo) indexKey() string         { return r.prefix + "notes" }
