package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/inkwell-market/noterank/internal/domain"
	"github.com/inkwell-market/noterank/internal/domain/search/filter"
	"github.com/inkwell-market/noterank/internal/domain/search/sortkey"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("react hooks", filter.None(), "", 0, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Query() != "react hooks" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.SortBy() != sortkey.Relevance {
		t.Errorf("SortBy() = %q, want relevance", r.SortBy())
	}
	if r.PageSize() != DefaultPageSize {
		t.Errorf("PageSize() = %d, want %d", r.PageSize(), DefaultPageSize)
	}
	if r.UserID() != "" {
		t.Errorf("UserID() = %q", r.UserID())
	}
}

func TestNew_TrimsQuery(t *testing.T) {
	r, err := New("  calculus  ", filter.None(), "", 0, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Query() != "calculus" {
		t.Errorf("Query() = %q, want trimmed", r.Query())
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	r, err := New("   ", filter.None(), "", 0, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Query() != "" {
		t.Errorf("Query() = %q, want empty", r.Query())
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxQueryLength+1), filter.None(), "", 0, "")
	if err == nil {
		t.Fatal("expected error for oversized query")
	}
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("error %v does not match domain.ErrInvalidRequest", err)
	}
}

func TestNew_InvalidSortKey(t *testing.T) {
	_, err := New("q", filter.None(), "alphabetical", 0, "")
	if err == nil {
		t.Fatal("expected error for unknown sort key")
	}
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("error %v does not match domain.ErrInvalidRequest", err)
	}
}

func TestNew_PageSizeBounds(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero gets default", 0, DefaultPageSize},
		{"negative gets default", -5, DefaultPageSize},
		{"capped at max", MaxPageSize + 100, MaxPageSize},
		{"in range", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("q", filter.None(), "", tt.in, "")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if r.PageSize() != tt.want {
				t.Errorf("PageSize() = %d, want %d", r.PageSize(), tt.want)
			}
		})
	}
}

func TestNew_CarriesUserAndFilters(t *testing.T) {
	f, err := filter.New("Math", 3, nil)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	r, err := New("q", f, sortkey.Rating, 5, "user-7")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.UserID() != "user-7" {
		t.Errorf("UserID() = %q", r.UserID())
	}
	if r.Filters().Category() != "Math" {
		t.Errorf("Filters().Category() = %q", r.Filters().Category())
	}
	if r.SortBy() != sortkey.Rating {
		t.Errorf("SortBy() = %q", r.SortBy())
	}
}
