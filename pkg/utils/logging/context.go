package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/testgenius/testgenius/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the request ID of ctx. A new ID is issued and attached when
// ctx has none.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

type ctxLoggerKey struct{}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// WithAttrs scopes the logger of ctx with attrs, e.g. the login of the session owner.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return With(ctx, From(ctx).With(attrs...))
}

// From returns the logger of ctx, or the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns the current time, or the time given by CtxWithTime. Session
// expiry and pull request branch names are derived from it.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// Detach returns a background context carrying the logger, request ID and time
// function of ctx but none of its cancellation. Work started by a request and
// outliving it runs on such a context.
func Detach(ctx context.Context) context.Context {
	dst := With(context.Background(), From(ctx))

	if reqID, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}
	if timeFunc, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, timeFunc)
	}

	return dst
}
