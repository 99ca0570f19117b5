package engagement

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hincrByFn      func(ctx context.Context, key, field string, incr int64) (int64, error)
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
}

func (m *mockStore) HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	if m.hincrByFn != nil {
		return m.hincrByFn(ctx, key, field, incr)
	}
	return 0, nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return make([]map[string]string, len(keys)), nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}
