package middleware

import (
	"net/http"

	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

// RequirePermission guards a route with a single (type, resource) check.
// Principals whose user type is in overrideUserTypes bypass the permission
// graph entirely.
func RequirePermission(ac service.Authorizer, required service.Requirement, overrideUserTypes ...uint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
				return
			}
			if err := ac.CheckPermission(principal, required, overrideUserTypes); err != nil {
				observability.RecordAuthzDecision(r.Context(), "deny")
				response.AppError(w, r, err)
				return
			}
			observability.RecordAuthzDecision(r.Context(), "allow")
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermissions guards a route with an ordered list of required pairs;
// the check fails fast at the first unmet requirement.
func RequirePermissions(ac service.Authorizer, required []service.Requirement, overrideUserTypes ...uint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
				return
			}
			if err := ac.CheckPermissions(principal, required, overrideUserTypes); err != nil {
				observability.RecordAuthzDecision(r.Context(), "deny")
				response.AppError(w, r, err)
				return
			}
			observability.RecordAuthzDecision(r.Context(), "allow")
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUserType allows only principals of the listed user types. No
// permission lookup happens.
func RequireUserType(ac service.Authorizer, allowedUserTypes ...uint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
				return
			}
			if err := ac.CheckUserType(principal, allowedUserTypes); err != nil {
				observability.RecordAuthzDecision(r.Context(), "deny")
				response.AppError(w, r, err)
				return
			}
			observability.RecordAuthzDecision(r.Context(), "allow")
			next.ServeHTTP(w, r)
		})
	}
}
