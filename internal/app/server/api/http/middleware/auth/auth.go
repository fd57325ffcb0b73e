package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artscout/internal/domain/session"
)

// CookieName — имя httpOnly-куки с токеном сессии.
const CookieName = "jwt"

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

const IdentityKey contextKey = "identity"

// Middleware проверяет токен сессии: сначала кука jwt, затем
// заголовок Authorization с Bearer-схемой.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := extractToken(ctx)
		if token == "" {
			a.unauthorized(ctx, "no session token")
			return
		}

		identity, err := a.session.Verify(token)
		if err != nil {
			a.unauthorized(ctx, err.Error())
			return
		}

		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

func (a *Auth) unauthorized(ctx huma.Context, reason string) {
	a.log.Debug("request rejected", slog.String("reason", reason))
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("encode unauthorized response", slog.String("error", err.Error()))
	}
}

func extractToken(ctx huma.Context) string {
	if cookie, err := huma.ReadCookie(ctx, CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := ctx.Header("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// WithIdentity кладет пользователя в контекст (мидлварь и тесты).
func WithIdentity(ctx context.Context, identity session.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentity достает аутентифицированного пользователя из контекста запроса.
func GetIdentity(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(session.Identity)
	return identity, ok
}
