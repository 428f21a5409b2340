package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/health"
	"github.com/anbessa/iam-backend/internal/http/handler"
	"github.com/anbessa/iam-backend/internal/http/middleware"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/security"
	"github.com/anbessa/iam-backend/internal/service"
)

type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RoleHandler       *handler.RoleHandler
	PermissionHandler *handler.PermissionHandler
	UserTypeHandler   *handler.UserTypeHandler
	JWTManager        *security.JWTManager
	AuthService       service.AuthServiceInterface
	AccessControl     service.Authorizer
	CORSOrigins       []string
	AuthRateLimitRPM  int
	APIRateLimitRPM   int
	GlobalRateLimiter func(http.Handler) http.Handler
	AuthRateLimiter   func(http.Handler) http.Handler
	Readiness         *health.ProbeRunner
	EnableOTelHTTP    bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
	}

	authenticate := middleware.Authenticate(dep.JWTManager, dep.AuthService)
	superAdmin := domain.SuperAdminUserTypeID

	requires := func(ptype, resource string) func(http.Handler) http.Handler {
		return middleware.RequirePermission(dep.AccessControl, service.Requirement{Type: ptype, Resource: resource}, superAdmin)
	}
	jsonBody := middleware.BodyLimit(1 << 20)

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter, jsonBody).Post("/login", dep.AuthHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", dep.AuthHandler.Me)
				r.Get("/me/profile-picture", dep.AuthHandler.ProfilePictureURL)
				r.With(authLimiter, jsonBody).Put("/me/password", dep.AuthHandler.ChangePassword)
				// Multipart upload carries its own size cap inside the
				// storage service, so no jsonBody here.
				r.Put("/me/profile-picture", dep.AuthHandler.ChangeProfilePicture)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authenticate)
			r.With(requires(domain.PermissionCreate, domain.ResourceUser), jsonBody).Post("/", dep.UserHandler.Create)
			r.With(requires(domain.PermissionRead, domain.ResourceUser)).Get("/", dep.UserHandler.Search)
			r.With(requires(domain.PermissionRead, domain.ResourceUser)).Get("/paginate", dep.UserHandler.SearchPaged)
			r.With(requires(domain.PermissionRead, domain.ResourceUser)).Get("/{code}", dep.UserHandler.FindByCode)
			r.With(requires(domain.PermissionUpdate, domain.ResourceUser)).Put("/{code}/activate", dep.UserHandler.Activate)
			r.With(requires(domain.PermissionUpdate, domain.ResourceUser)).Put("/{code}/deactivate", dep.UserHandler.Deactivate)
			r.With(requires(domain.PermissionUpdate, domain.ResourceUser)).Put("/{code}/lock", dep.UserHandler.Lock)
			r.With(requires(domain.PermissionUpdate, domain.ResourceUser)).Put("/{code}/unlock", dep.UserHandler.Unlock)
			// Granting a role touches both the user and the role, so both
			// update permissions are required, in that order.
			roleGrant := middleware.RequirePermissions(dep.AccessControl, []service.Requirement{
				{Type: domain.PermissionUpdate, Resource: domain.ResourceUser},
				{Type: domain.PermissionUpdate, Resource: domain.ResourceRole},
			}, superAdmin)
			r.With(roleGrant, jsonBody).Post("/{code}/roles", dep.UserHandler.AssignRole)
			r.With(roleGrant).Delete("/{code}/roles/{roleID}", dep.UserHandler.RemoveRole)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Use(authenticate)
			r.With(requires(domain.PermissionCreate, domain.ResourceRole), jsonBody).Post("/", dep.RoleHandler.Create)
			r.With(requires(domain.PermissionRead, domain.ResourceRole)).Get("/", dep.RoleHandler.Search)
			r.With(requires(domain.PermissionRead, domain.ResourceRole)).Get("/paginate", dep.RoleHandler.SearchPaged)
			r.With(requires(domain.PermissionRead, domain.ResourceRole)).Get("/{id}", dep.RoleHandler.FindByID)
			r.With(requires(domain.PermissionUpdate, domain.ResourceRole), jsonBody).Put("/{id}", dep.RoleHandler.Update)
			r.With(requires(domain.PermissionDelete, domain.ResourceRole)).Delete("/{id}", dep.RoleHandler.Delete)
			permissionGrant := middleware.RequirePermissions(dep.AccessControl, []service.Requirement{
				{Type: domain.PermissionUpdate, Resource: domain.ResourceRole},
				{Type: domain.PermissionUpdate, Resource: domain.ResourcePermission},
			}, superAdmin)
			r.With(permissionGrant, jsonBody).Post("/{id}/permissions", dep.RoleHandler.AssignPermission)
			r.With(permissionGrant).Delete("/{id}/permissions/{permissionID}", dep.RoleHandler.RemovePermission)
		})

		r.Route("/permissions", func(r chi.Router) {
			r.Use(authenticate)
			r.With(requires(domain.PermissionCreate, domain.ResourcePermission), jsonBody).Post("/", dep.PermissionHandler.Create)
			r.With(requires(domain.PermissionRead, domain.ResourcePermission)).Get("/", dep.PermissionHandler.Search)
			r.With(requires(domain.PermissionRead, domain.ResourcePermission)).Get("/paginate", dep.PermissionHandler.SearchPaged)
			r.With(requires(domain.PermissionRead, domain.ResourcePermission)).Get("/{id}", dep.PermissionHandler.FindByID)
			r.With(requires(domain.PermissionUpdate, domain.ResourcePermission), jsonBody).Put("/{id}", dep.PermissionHandler.Update)
			r.With(requires(domain.PermissionDelete, domain.ResourcePermission)).Delete("/{id}", dep.PermissionHandler.Delete)
		})

		r.Route("/user-types", func(r chi.Router) {
			r.Use(authenticate)
			// User type management is reserved for super admins.
			r.Use(middleware.RequireUserType(dep.AccessControl, superAdmin))
			r.With(jsonBody).Post("/", dep.UserTypeHandler.Create)
			r.Get("/", dep.UserTypeHandler.Search)
			r.Get("/paginate", dep.UserTypeHandler.SearchPaged)
			r.Get("/{id}", dep.UserTypeHandler.FindByID)
			r.With(jsonBody).Put("/{id}", dep.UserTypeHandler.Update)
			r.Delete("/{id}", dep.UserTypeHandler.Delete)
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
