package noterank

import (
	"context"
	"fmt"

	engagementuc "github.com/inkwell-market/noterank/internal/usecase/engagement"
)

// EventsService records engagement events feeding popularity and
// personalization scoring.
type EventsService struct {
	svc *engagementuc.Service
}

// Counters holds the live engagement counters for one note.
type Counters struct {
	Views     int
	Purchases int
}

// RecordView records a view event and returns the new view count.
// userID may be empty for anonymous traffic.
func (s *EventsService) RecordView(ctx context.Context, noteID, userID string) (int, error) {
	count, err := s.svc.Record(ctx, engagementuc.EventView, noteID, userID)
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}
	return count, nil
}

// RecordPurchase records a purchase event and returns the new purchase count.
// userID may be empty for anonymous traffic.
func (s *EventsService) RecordPurchase(ctx context.Context, noteID, userID string) (int, error) {
	count, err := s.svc.Record(ctx, engagementuc.EventPurchase, noteID, userID)
	if err != nil {
		return 0, fmt.Errorf("record purchase: %w", err)
	}
	return count, nil
}

// Counters returns the live counters for one note.
func (s *EventsService) Counters(ctx context.Context, noteID string) (Counters, error) {
	c, err := s.svc.Counters(ctx, noteID)
	if err != nil {
		return Counters{}, fmt.Errorf("counters: %w", err)
	}
	return Counters{Views: c.Views, Purchases: c.Purchases}, nil
}
