package noterank

import (
	"context"
	"fmt"

	historyuc "github.com/inkwell-market/noterank/internal/usecase/history"
)

// HistoryService reads and clears per-user recent searches.
type HistoryService struct {
	svc *historyuc.Service
}

// Recent returns the user's recent queries, newest first.
func (s *HistoryService) Recent(ctx context.Context, userID string) ([]string, error) {
	entries, err := s.svc.Recent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	return entries, nil
}

// Clear drops the user's search history.
func (s *HistoryService) Clear(ctx context.Context, userID string) error {
	if err := s.svc.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
