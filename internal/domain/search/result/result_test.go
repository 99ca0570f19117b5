package result

import (
	"testing"
	"time"

	"github.com/inkwell-market/noterank/internal/domain/note"
)

func TestNew(t *testing.T) {
	n := note.Reconstruct(
		"n1", "Title", "", "Math", "", nil,
		9.99, 4.2, 10, 3, 50,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), false, 0.4,
	)
	b := Breakdown{
		ContentSimilarity: 0.8,
		Popularity:        0.3,
		Recency:           1.0,
		Creator:           0.4,
		Personalization:   0.1,
		Final:             0.56,
	}

	r := New(n, b)

	if r.Note().ID() != "n1" {
		t.Errorf("Note().ID() = %q", r.Note().ID())
	}
	if r.Breakdown() != b {
		t.Errorf("Breakdown() = %+v", r.Breakdown())
	}
	if r.Final() != 0.56 {
		t.Errorf("Final() = %v", r.Final())
	}
	if r.ContentSimilarity() != 0.8 {
		t.Errorf("ContentSimilarity() = %v", r.ContentSimilarity())
	}
	if r.Popularity() != 0.3 {
		t.Errorf("Popularity() = %v", r.Popularity())
	}
}
