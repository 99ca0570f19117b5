package catalog

import (
	"context"
	"fmt"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/note"
)

// Pagination defaults.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service manages the note catalog.
type Service struct {
	repo            Repository
	engagement      EngagementResetter
	defaultPageSize int
	maxPageSize     int
}

// New creates a catalog service. engagement may be nil.
func New(repo Repository, engagement EngagementResetter) *Service {
	return &Service{
		repo:            repo,
		engagement:      engagement,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
}

// WithPagination overrides the default and maximum page sizes.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Upsert validates and stores a note. Returns true if created.
func (s *Service) Upsert(ctx context.Context, n *note.Note) (bool, error) {
	created, err := s.repo.Upsert(ctx, n)
	if err != nil {
		return false, fmt.Errorf("upsert note: %w", err)
	}
	return created, nil
}

// Get returns a note by ID.
func (s *Service) Get(ctx context.Context, id string) (note.Note, error) {
	if id == "" {
		return note.Note{}, fmt.Errorf("%w: note ID is required", domain.ErrInvalidNote)
	}
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return note.Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// Delete removes a note and resets its engagement counters.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: note ID is required", domain.ErrInvalidNote)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if s.engagement != nil {
		if err := s.engagement.Reset(ctx, id); err != nil {
			return fmt.Errorf("reset counters: %w", err)
		}
	}
	return nil
}

// List returns a page of notes plus the cursor for the next page.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]note.Note, string, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	notes, next, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list notes: %w", err)
	}
	return notes, next, nil
}

// Count returns the catalog size.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return n, nil
}
