package engagement

import (
	"context"
	"fmt"

	engagementrepo "github.com/inkwell-market/noterank/internal/repository/engagement"
)

// EventType is a recordable engagement event.
type EventType string

// Event types.
const (
	EventView     EventType = "view"
	EventPurchase EventType = "purchase"
)

// IsValid checks if the event type is supported.
func (e EventType) IsValid() bool {
	return e == EventView || e == EventPurchase
}

// Service records engagement events and exposes live counters. Counters are
// authoritative inputs to popularity scoring; the stored note keeps only a
// snapshot from ingestion time.
type Service struct {
	counters CounterRepository
	notes    NoteReader
	profiler Profiler
}

// New creates an engagement service. profiler may be nil.
func New(counters CounterRepository, notes NoteReader, profiler Profiler) *Service {
	return &Service{counters: counters, notes: notes, profiler: profiler}
}

// Record applies one event: bumps the counter and, for identified users,
// feeds the personalization profile with the note's category.
func (s *Service) Record(ctx context.Context, eventType EventType, noteID, userID string) (int, error) {
	if !eventType.IsValid() {
		return 0, fmt.Errorf("unsupported event type: %q", eventType)
	}

	n, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return 0, fmt.Errorf("resolve note: %w", err)
	}

	var count int
	switch eventType {
	case EventView:
		count, err = s.counters.IncrView(ctx, noteID)
	case EventPurchase:
		count, err = s.counters.IncrPurchase(ctx, noteID)
	}
	if err != nil {
		return 0, fmt.Errorf("record %s: %w", eventType, err)
	}

	if s.profiler != nil && userID != "" {
		switch eventType {
		case EventView:
			err = s.profiler.RecordView(ctx, userID, n.Category())
		case EventPurchase:
			err = s.profiler.RecordPurchase(ctx, userID, n.Category())
		}
		if err != nil {
			return 0, fmt.Errorf("update profile: %w", err)
		}
	}

	return count, nil
}

// Counters returns the live counters for one note.
func (s *Service) Counters(ctx context.Context, noteID string) (engagementrepo.Counters, error) {
	c, err := s.counters.Get(ctx, noteID)
	if err != nil {
		return engagementrepo.Counters{}, fmt.Errorf("read counters: %w", err)
	}
	return c, nil
}
