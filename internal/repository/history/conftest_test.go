package history

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	lpushFn  func(ctx context.Context, key string, elements ...string) error
	lremFn   func(ctx context.Context, key string, count int64, element string) error
	ltrimFn  func(ctx context.Context, key string, start, stop int64) error
	lrangeFn func(ctx context.Context, key string, start, stop int64) ([]string, error)
	delFn    func(ctx context.Context, key string) error
}

func (m *mockStore) LPush(ctx context.Context, key string, elements ...string) error {
	if m.lpushFn != nil {
		return m.lpushFn(ctx, key, elements...)
	}
	return nil
}

func (m *mockStore) LRem(ctx context.Context, key string, count int64, element string) error {
	if m.lremFn != nil {
		return m.lremFn(ctx, key, count, element)
	}
	return nil
}

func (m *mockStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	if m.ltrimFn != nil {
		return m.ltrimFn(ctx, key, start, stop)
	}
	return nil
}

func (m *mockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}
