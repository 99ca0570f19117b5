package engagement

import (
	"context"
	"errors"
	"testing"
)

func TestIncrView(t *testing.T) {
	var gotKey, gotField string
	store := &mockStore{
		hincrByFn: func(_ context.Context, key, field string, incr int64) (int64, error) {
			gotKey, gotField = key, field
			if incr != 1 {
				t.Errorf("incr = %d, want 1", incr)
			}
			return 42, nil
		},
	}
	repo := New(store)

	n, err := repo.IncrView(context.Background(), "n1")
	if err != nil {
		t.Fatalf("IncrView: %v", err)
	}
	if n != 42 {
		t.Errorf("count = %d, want 42", n)
	}
	if gotKey != "noterank:eng:n1" || gotField != fieldViews {
		t.Errorf("incremented %q/%q", gotKey, gotField)
	}
}

func TestIncrPurchase(t *testing.T) {
	var gotField string
	store := &mockStore{
		hincrByFn: func(_ context.Context, _, field string, _ int64) (int64, error) {
			gotField = field
			return 7, nil
		},
	}
	repo := New(store)

	n, err := repo.IncrPurchase(context.Background(), "n1")
	if err != nil {
		t.Fatalf("IncrPurchase: %v", err)
	}
	if n != 7 || gotField != fieldPurchases {
		t.Errorf("count = %d, field = %q", n, gotField)
	}
}

func TestGet(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{"views": "10", "purchases": "3"}, nil
		},
	}
	repo := New(store)

	c, err := repo.Get(context.Background(), "n1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Views != 10 || c.Purchases != 3 {
		t.Errorf("Counters = %+v", c)
	}
}

func TestGet_MissingKeyReadsZero(t *testing.T) {
	repo := New(&mockStore{})

	c, err := repo.Get(context.Background(), "n1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Views != 0 || c.Purchases != 0 {
		t.Errorf("Counters = %+v, want zeros", c)
	}
}

func TestGet_CorruptValuesReadZero(t *testing.T) {
	store := &mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{"views": "many", "purchases": "-5"}, nil
		},
	}
	repo := New(store)

	c, err := repo.Get(context.Background(), "n1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Views != 0 || c.Purchases != 0 {
		t.Errorf("Counters = %+v, want zeros", c)
	}
}

func TestGetMulti_PositionallyAligned(t *testing.T) {
	store := &mockStore{
		hgetAllMultiFn: func(_ context.Context, keys []string) ([]map[string]string, error) {
			if len(keys) != 3 {
				t.Fatalf("keys = %v", keys)
			}
			return []map[string]string{
				{"views": "1"},
				{},
				{"purchases": "9"},
			}, nil
		},
	}
	repo := New(store)

	out, err := repo.GetMulti(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d counters", len(out))
	}
	if out[0].Views != 1 || out[1] != (Counters{}) || out[2].Purchases != 9 {
		t.Errorf("counters = %+v", out)
	}
}

func TestGetMulti_Empty(t *testing.T) {
	repo := New(&mockStore{})

	out, err := repo.GetMulti(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if out != nil {
		t.Errorf("got %d counters, want nil", len(out))
	}
}

func TestReset(t *testing.T) {
	var gotKey string
	store := &mockStore{
		delFn: func(_ context.Context, key string) error {
			gotKey = key
			return nil
		},
	}
	repo := New(store).WithPrefix("staging:")

	if err := repo.Reset(context.Background(), "n1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if gotKey != "staging:eng:n1" {
		t.Errorf("key = %q", gotKey)
	}
}

func TestIncrView_StoreError(t *testing.T) {
	store := &mockStore{
		hincrByFn: func(_ context.Context, _, _ string, _ int64) (int64, error) {
			return 0, errors.New("down")
		},
	}
	repo := New(store)

	if _, err := repo.IncrView(context.Background(), "n1"); err == nil {
		t.Fatal("expected error")
	}
}
