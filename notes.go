package noterank

import (
	"context"
	"fmt"

	"github.com/inkwell-market/noterank/internal/domain/note"
	cataloguc "github.com/inkwell-market/noterank/internal/usecase/catalog"
)

// NotesService manages the note catalog.
type NotesService struct {
	svc *cataloguc.Service
}

// Upsert validates and stores a note. Returns true if the note was created,
// false if an existing note was overwritten.
func (s *NotesService) Upsert(ctx context.Context, n Note) (bool, error) {
	dn, err := toDomainNote(n)
	if err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}
	created, err := s.svc.Upsert(ctx, &dn)
	if err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}
	return created, nil
}

// Get returns a note by ID.
func (s *NotesService) Get(ctx context.Context, id string) (Note, error) {
	n, err := s.svc.Get(ctx, id)
	if err != nil {
		return Note{}, fmt.Errorf("get: %w", err)
	}
	return fromDomainNote(&n), nil
}

// Delete removes a note and its engagement counters.
func (s *NotesService) Delete(ctx context.Context, id string) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// List returns a page of notes in stable ID order plus the cursor for the
// next page. An empty cursor starts from the beginning; an empty returned
// cursor means the listing is exhausted.
func (s *NotesService) List(ctx context.Context, cursor string, limit int) ([]Note, string, error) {
	notes, next, err := s.svc.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list: %w", err)
	}
	out := make([]Note, len(notes))
	for i := range notes {
		out[i] = fromDomainNote(&notes[i])
	}
	return out, next, nil
}

// Count returns the catalog size.
func (s *NotesService) Count(ctx context.Context) (int, error) {
	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func toDomainNote(n Note) (note.Note, error) {
	return note.New(
		n.ID, n.Title, n.Author, n.Category, n.Preview,
		n.Tags, n.Price, n.Rating,
		n.ReviewCount, n.PurchaseCount, n.ViewCount,
		n.CreatedAt, n.VerifiedCreator, n.CreatorTrust,
	)
}

func fromDomainNote(n *note.Note) Note {
	return Note{
		ID:              n.ID(),
		Title:           n.Title(),
		Author:          n.Author(),
		Category:        n.Category(),
		Preview:         n.Preview(),
		Tags:            n.Tags(),
		Price:           n.Price(),
		Rating:          n.Rating(),
		ReviewCount:     n.ReviewCount(),
		PurchaseCount:   n.PurchaseCount(),
		ViewCount:       n.ViewCount(),
		CreatedAt:       n.CreatedAt(),
		VerifiedCreator: n.VerifiedCreator(),
		CreatorTrust:    n.CreatorTrust(),
	}
}
