package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/storage"
)

type callerCtxKey struct{}

// Identity resolves the request's bearer token to a user reference through
// the storage layer. Token issuance lives in the identity subsystem; from
// this service's point of view the token is opaque. Absent or unknown
// tokens yield an anonymous caller, never an error: anonymous review
// requests are permitted and unmetered.
func Identity(store storage.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := core.Anonymous()

			if token, ok := bearerToken(r); ok {
				user, err := store.GetUserByToken(r.Context(), token)
				switch {
				case err == nil:
					caller = core.Authenticated(user)
				case errors.Is(err, core.ErrUserNotFound):
					logger.Debug("unknown api token, treating request as anonymous")
				default:
					logger.Error("identity lookup failed", "error", err)
					respondError(w, http.StatusInternalServerError, "Failed to resolve identity")
					return
				}
			}

			ctx := context.WithValue(r.Context(), callerCtxKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the caller resolved by the Identity middleware,
// or the anonymous caller when the middleware did not run.
func CallerFromContext(ctx context.Context) core.Caller {
	if caller, ok := ctx.Value(callerCtxKey{}).(core.Caller); ok {
		return caller
	}
	return core.Anonymous()
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(auth[len(prefix):]), true
}
