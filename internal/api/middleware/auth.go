// Package middleware implements the per-request pipeline that runs before
// the route handlers: trace ID injection, bearer token extraction, and
// resolution of the token to a user identity.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/stefhagen/bloglist-api/internal/api/shared"
	"github.com/stefhagen/bloglist-api/internal/platform/logger"
	"github.com/stefhagen/bloglist-api/internal/service/auth"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// bearerPrefix is the authorization scheme the token extractor accepts.
const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens to user identities.
//
// The two steps are separate middlewares so routes can opt into extraction
// without resolution, but they are normally chained in order:
// ExtractToken then ResolveUser.
type AuthMiddleware struct {
	tokenService auth.TokenService
	userStore    store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userStore:    userStore,
	}
}

// ExtractToken reads the Authorization header and, when it carries the
// Bearer scheme, attaches the raw token string to the request context.
// A missing header or a different scheme attaches nothing; that is not an
// error, the request simply proceeds without a token.
func (m *AuthMiddleware) ExtractToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, bearerPrefix) {
			token := strings.TrimPrefix(authHeader, bearerPrefix)
			r = r.WithContext(shared.WithToken(r.Context(), token))
		}

		next.ServeHTTP(w, r)
	})
}

// ResolveUser turns an extracted token into a request identity.
//
// No token means the request stays anonymous and proceeds; anonymity is only
// rejected by handlers that require identity. A token that is present but
// malformed or expired fails the request loudly instead of downgrading to
// anonymous: expired tokens get 401, anything else invalid gets 400. A valid
// token whose user no longer exists resolves to anonymous.
func (m *AuthMiddleware) ResolveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := shared.TokenFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context())

		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusBadRequest, "token missing or invalid")
			default:
				shared.RespondWithErrorAndLog(w, r,
					http.StatusInternalServerError, "internal server error", err)
			}
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// The token was validly signed for a user that no longer
				// exists. Treat as anonymous rather than failing the request.
				log.Debug("token resolved to unknown user",
					"user_id", claims.UserID)
				next.ServeHTTP(w, r)
				return
			}
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, "internal server error", err)
			return
		}

		ctx := shared.WithCurrentUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
