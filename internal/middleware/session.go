package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"event-management-api/internal/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Resolver turns a session token into the caller's identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (auth.Identity, error)
}

// Session never rejects a request. A missing or unusable cookie leaves the
// caller anonymous and the handler decides whether that is enough.
func Session(resolver Resolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var who auth.Identity
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				id, err := resolver.Resolve(r.Context(), c.Value)
				switch {
				case err == nil:
					who = id
				case errors.Is(err, auth.ErrNoSession):
				default:
					zerolog.Ctx(r.Context()).Debug().Err(err).Msg("session cookie ignored")
				}
			}

			ctx := WithIdentity(r.Context(), who)
			if who.Authenticated() {
				l := zerolog.Ctx(ctx).With().Int64("user_id", who.UserID).Logger()
				ctx = l.WithContext(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithIdentity(ctx context.Context, who auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, who)
}

// IdentityFrom returns the anonymous identity when none was stored.
func IdentityFrom(ctx context.Context) auth.Identity {
	who, _ := ctx.Value(identityKey).(auth.Identity)
	return who
}
