package history

import (
	"context"
	"fmt"

	"github.com/inkwell-market/noterank/internal/domain"
)

// Capacity bounds for the recent-searches list.
const (
	DefaultCapacity = 8
	MinCapacity     = 5
	MaxCapacity     = 10
)

// Service maintains the per-user recent-searches list: newest first,
// deduplicated, oldest dropped on overflow.
type Service struct {
	repo     Repository
	capacity int
}

// New creates a history service with DefaultCapacity.
func New(repo Repository) *Service {
	return &Service{repo: repo, capacity: DefaultCapacity}
}

// WithCapacity overrides the list capacity, clamped to [MinCapacity, MaxCapacity].
func (s *Service) WithCapacity(capacity int) *Service {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	s.capacity = capacity
	return s
}

// Capacity returns the configured list capacity.
func (s *Service) Capacity() int { return s.capacity }

// Record stores a query for a user. Anonymous users and empty queries are
// silently skipped.
func (s *Service) Record(ctx context.Context, userID, query string) error {
	if userID == "" || query == "" {
		return nil
	}
	if err := s.repo.Push(ctx, userID, query, s.capacity); err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// Recent returns the user's recent queries, newest first.
func (s *Service) Recent(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, domain.ErrUserRequired
	}
	entries, err := s.repo.Recent(ctx, userID, s.capacity)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return entries, nil
}

// Clear drops the user's history.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUserRequired
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
