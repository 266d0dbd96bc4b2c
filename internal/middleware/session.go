package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/hongminglow/catalog-be/internal/http/respond"
	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/models/dto"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "token"

type identityKey struct{}

// TokenParser validates a session token and returns its identity.
type TokenParser interface {
	Parse(token string) (models.Identity, error)
}

// RequireSession rejects requests without a valid session cookie with
// 401 {"user": null}. Accepted requests carry the identity in their context.
func RequireSession(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				respond.JSON(w, r, http.StatusUnauthorized, dto.SessionResponse{})
				return
			}
			identity, err := tokens.Parse(cookie.Value)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("session rejected")
				respond.JSON(w, r, http.StatusUnauthorized, dto.SessionResponse{})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity returns ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the session identity stored by RequireSession.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	return identity, ok
}
