package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

const Header = "X-Request-Id"

type contextKey string

const requestIDKey contextKey = "requestID"

// Middleware tags every request with an id. An id supplied by the
// client is kept so upstream proxies can correlate, otherwise a fresh
// one is generated.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.SetHeader(Header, id)
		next(huma.WithContext(ctx, WithRequestID(ctx.Context(), id)))
	}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
