package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/security"
	"github.com/anbessa/iam-backend/internal/service"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Authenticate verifies the bearer token and attaches the principal (the
// user with user type, roles, and each role's permissions eagerly loaded)
// to the request context. Guards downstream read that shape and never load
// on their own.
func Authenticate(jwtMgr *security.JWTManager, authSvc service.AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing access token", nil)
				return
			}
			raw := strings.TrimSpace(auth[7:])
			claims, err := jwtMgr.Parse(raw)
			if err != nil {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid access token", nil)
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid access token", nil)
				return
			}
			principal, err := authSvc.Principal(userID)
			if err != nil {
				response.AppError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func PrincipalFromContext(ctx context.Context) (*domain.User, bool) {
	p, ok := ctx.Value(principalContextKey).(*domain.User)
	return p, ok
}

// WithPrincipal is a test seam for handlers and guards.
func WithPrincipal(ctx context.Context, principal *domain.User) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}
