package redis

import (
	"context"

	"github.com/inkwell-market/noterank/internal/db"
)

// LPush prepends elements to a list.
func (s *Store) LPush(ctx context.Context, key string, elements ...string) error {
	if len(elements) == 0 {
		return nil
	}
	cmd := s.b().Lpush().Key(key).Element(elements...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpLPush, Err: err}
	}
	return nil
}

// LRem removes up to count occurrences of element from a list.
func (s *Store) LRem(ctx context.Context, key string, count int64, element string) error {
	cmd := s.b().Lrem().Key(key).Count(count).Element(element).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpLRem, Err: err}
	}
	return nil
}

// LTrim trims a list to the given inclusive index range.
func (s *Store) LTrim(ctx context.Context, key string, start, stop int64) error {
	cmd := s.b().Ltrim().Key(key).Start(start).Stop(stop).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpLTrim, Err: err}
	}
	return nil
}

// LRange returns the list elements in the given inclusive index range.
func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	cmd := s.b().Lrange().Key(key).Start(start).Stop(stop).Build()
	elements, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return elements, nil
}
