package handlers

import (
	"context"
	"net/http"
	"strings"

	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/auth"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/logger"
)

// Authenticator resolves a bearer token to live session claims.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.AccessTokenClaims, error)
}

// Session identifies the admin behind a request. AccessID is the token's jti
// and keys both the session and the console state.
type Session struct {
	AccessID string
	UserID   string
	Role     string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// RequireSession validates the bearer token and seeds the request context.
func RequireSession(authn Authenticator, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, apperrors.New(apperrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithSession(r.Context(), Session{AccessID: claims.ID, UserID: claims.UserID, Role: claims.Role})
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{"user_id": claims.UserID, "actor_role": claims.Role})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFromContext(r.Context())
			if !ok || s.Role != role {
				responses.WriteError(r.Context(), logg, w, apperrors.New(apperrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

// mustSession is only called behind RequireSession.
func mustSession(r *http.Request) Session {
	s, _ := SessionFromContext(r.Context())
	return s
}
