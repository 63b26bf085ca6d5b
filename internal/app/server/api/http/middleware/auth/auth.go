package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"carelink/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

// Middleware resolves the caller from the Authorization header. The
// response body is the same for every failure mode; the reason only
// goes to the log.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := BearerToken(ctx.Header("Authorization"))
		if !ok {
			a.log.Debug("missing or malformed bearer header")
			reject(ctx, a.log)
			return
		}

		userID, err := a.session.Verify(token)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			reject(ctx, a.log)
			return
		}

		newCtx := WithUserID(ctx.Context(), userID)
		next(huma.WithContext(ctx, newCtx))
	}
}

// BearerToken extracts the credential from an Authorization header
// value. The scheme match is exact, "bearer" in any other casing is
// rejected.
func BearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func reject(ctx huma.Context, log *slog.Logger) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		log.Error("failed to write unauthorized response", "error", err)
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
