package personalization

import (
	"context"
	"fmt"
)

// Interaction weights: a purchase says more about taste than a view.
const (
	ViewWeight     = 1
	PurchaseWeight = 5
)

// maxSignal keeps the signal strictly below the 0.5 ceiling the scorer
// enforces, so even a single-category profile never saturates.
const maxSignal = 0.45

// Service derives a deterministic per-user affinity signal from recorded
// interactions. It replaces ad-hoc randomized personalization with a
// reproducible function of user history.
type Service struct {
	repo Repository
}

// New creates a personalization service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordView adds a view interaction to the user's profile.
func (s *Service) RecordView(ctx context.Context, userID, category string) error {
	return s.record(ctx, userID, category, ViewWeight)
}

// RecordPurchase adds a purchase interaction to the user's profile.
func (s *Service) RecordPurchase(ctx context.Context, userID, category string) error {
	return s.record(ctx, userID, category, PurchaseWeight)
}

func (s *Service) record(ctx context.Context, userID, category string, weight int) error {
	if userID == "" || category == "" {
		return nil
	}
	if err := s.repo.Incr(ctx, userID, category, weight); err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// SignalFor loads the user's profile once and returns a per-category signal
// function in [0, maxSignal]. Anonymous users (empty ID) and users without
// history get the zero function.
func (s *Service) SignalFor(ctx context.Context, userID string) (func(category string) float64, error) {
	zero := func(string) float64 { return 0 }
	if userID == "" {
		return zero, nil
	}

	counts, err := s.repo.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load affinity: %w", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return zero, nil
	}

	return func(category string) float64 {
		return float64(counts[category]) / float64(total) * maxSignal
	}, nil
}

// Forget drops the user's profile.
func (s *Service) Forget(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("forget affinity: %w", err)
	}
	return nil
}
