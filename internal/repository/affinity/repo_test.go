package affinity

import (
	"context"
	"errors"
	"testing"
)

func TestIncr(t *testing.T) {
	var gotKey, gotField string
	var gotIncr int64
	store := &mockStore{
		hincrByFn: func(_ context.Context, key, field string, incr int64) (int64, error) {
			gotKey, gotField, gotIncr = key, field, incr
			return incr, nil
		},
	}
	repo := New(store)

	if err := repo.Incr(context.Background(), "user-1", "Math", 5); err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if gotKey != "noterank:aff:user-1" || gotField != "Math" || gotIncr != 5 {
		t.Errorf("HIncrBy(%q, %q, %d)", gotKey, gotField, gotIncr)
	}
}

func TestIncr_EmptyCategorySkipped(t *testing.T) {
	store := &mockStore{
		hincrByFn: func(_ context.Context, _, _ string, _ int64) (int64, error) {
			return 0, errors.New("should not be called")
		},
	}
	repo := New(store)

	if err := repo.Incr(context.Background(), "user-1", "", 1); err != nil {
		t.Errorf("Incr: %v", err)
	}
}

func TestCounts(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{"Math": "12", "Art": "3"}, nil
		},
	}
	repo := New(store)

	counts, err := repo.Counts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts["Math"] != 12 || counts["Art"] != 3 {
		t.Errorf("counts = %v", counts)
	}
}

func TestCounts_SkipsInvalidValues(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{"Math": "12", "Junk": "lots", "Negative": "-4"}, nil
		},
	}
	repo := New(store)

	counts, err := repo.Counts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != 1 || counts["Math"] != 12 {
		t.Errorf("counts = %v, want only the valid entry", counts)
	}
}

func TestCounts_MissingUser(t *testing.T) {
	repo := New(&mockStore{})

	counts, err := repo.Counts(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts = %v, want empty", counts)
	}
}

func TestClear(t *testing.T) {
	var gotKey string
	store := &mockStore{
		delFn: func(_ context.Context, key string) error {
			gotKey = key
			return nil
		},
	}
	repo := New(store)

	if err := repo.Clear(context.Background(), "user-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if gotKey != "noterank:aff:user-1" {
		t.Errorf("key = %q", gotKey)
	}
}
