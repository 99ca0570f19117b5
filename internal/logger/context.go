package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

var nop = zap.NewNop()

// ContextWithLogger returns a context carrying the given logger. The HTTP
// middleware uses it to thread a request-scoped logger into the usecases.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger when
// none was attached. Callers never need a nil check.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return l
	}
	return nop
}
