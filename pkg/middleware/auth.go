package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"movie-rating/pkg/apperror"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator resolves a signed session token to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, signed string) (utils.Identity, error)
}

// LoadSession attaches the caller's identity to the request context. Requests
// without a valid session continue as Anonymous; rejecting them is left to
// AuthSession.
func LoadSession(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := utils.Anonymous()

			if token := sessionToken(r); token != "" {
				resolved, err := auth.Authenticate(r.Context(), token)
				switch {
				case err == nil:
					identity = resolved
					noteUser(r.Context(), identity.UserID)
				case errors.Is(err, apperror.ErrUnauthorized):
					logger.Debug("Invalid or expired session", zap.String("path", r.URL.Path))
				default:
					logger.Error("Failed to validate session", zap.Error(err))
				}
			}

			ctx := utils.SetIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthSession rejects Anonymous requests with 401.
func AuthSession(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := utils.GetIdentity(r.Context()).Require(); err != nil {
				logger.Warn("Unauthenticated access attempt",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// sessionToken prefers the session cookie and falls back to "Bearer <token>".
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
