package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/anbessa/iam-backend/internal/app"
	"github.com/anbessa/iam-backend/internal/config"
	"github.com/anbessa/iam-backend/internal/database"
	"github.com/anbessa/iam-backend/internal/health"
	"github.com/anbessa/iam-backend/internal/http/handler"
	"github.com/anbessa/iam-backend/internal/http/middleware"
	"github.com/anbessa/iam-backend/internal/http/router"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/repository"
	"github.com/anbessa/iam-backend/internal/security"
	"github.com/anbessa/iam-backend/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideObjectStoreClient,
	provideProfilePictureStorage,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewUserTypeRepository,
	repository.NewRoleRepository,
	repository.NewPermissionRepository,
	repository.NewPolicyRepository,
	repository.NewRolePermissionRepository,
)

var SecuritySet = wire.NewSet(
	security.NewArgon2Hasher,
	wire.Bind(new(security.PasswordHasher), new(*security.Argon2Hasher)),
	provideJWTManager,
)

var ServiceSet = wire.NewSet(
	service.NewAccessControl,
	service.NewUserService,
	service.NewRoleService,
	service.NewPermissionService,
	service.NewUserTypeService,
	service.NewAuthService,
	wire.Bind(new(service.Authorizer), new(*service.AccessControl)),
	wire.Bind(new(service.UserServiceInterface), new(*service.UserService)),
	wire.Bind(new(service.RoleServiceInterface), new(*service.RoleService)),
	wire.Bind(new(service.PermissionServiceInterface), new(*service.PermissionService)),
	wire.Bind(new(service.UserTypeServiceInterface), new(*service.UserTypeService)),
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewRoleHandler,
	handler.NewPermissionHandler,
	handler.NewUserTypeHandler,
	provideGlobalRateLimiter,
	provideAuthRateLimiter,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(provideApp)

// GlobalRateLimiterFunc and AuthRateLimiterFunc give wire distinct types
// for the two limiter middlewares.
type GlobalRateLimiterFunc func(http.Handler) http.Handler
type AuthRateLimiterFunc func(http.Handler) http.Handler

// MigrationRunner drives schema migrations and catalog seeding outside the
// main server process.
type MigrationRunner struct {
	Config *config.Config
	db     *gorm.DB
}

func NewMigrationRunner(cfg *config.Config, db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{Config: cfg, db: db}
}

func (m *MigrationRunner) Migrate() error {
	return database.Migrate(m.db)
}

// Seed populates the permission catalog and the bootstrap admin. Empty
// credentials fall back to the configured bootstrap admin, if any.
func (m *MigrationRunner) Seed(adminUsername, adminPassword string) (*database.SeedReport, error) {
	if adminUsername == "" {
		adminUsername = m.Config.BootstrapAdminUsername
		adminPassword = m.Config.BootstrapAdminPassword
	}
	return database.SeedSync(m.db, adminUsername, adminPassword)
}

func (m *MigrationRunner) Ping() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *MigrationRunner) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.Seed(db, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	if !cfg.RateLimitRedis {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	observability.InstrumentRedisClient(client, logger)
	return client, nil
}

func provideObjectStoreClient(cfg *config.Config) (*minio.Client, error) {
	return minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
}

func provideProfilePictureStorage(cfg *config.Config) (service.ProfilePictureStorage, error) {
	return service.NewMinIOProfilePictureStorage(
		cfg.MinIOEndpoint,
		cfg.MinIOAccessKey,
		cfg.MinIOSecretKey,
		cfg.MinIOBucket,
		cfg.MinIOUseSSL,
	)
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret, cfg.JWTTTL)
}

func provideGlobalRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) GlobalRateLimiterFunc {
	if cfg.RateLimitRedis && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitPrefix+":api")
		return GlobalRateLimiterFunc(middleware.NewScopedRateLimiter(
			redisLimiter,
			cfg.APIRateLimitPerMin,
			time.Minute,
			middleware.FailOpen,
			"api",
		).Middleware())
	}
	return GlobalRateLimiterFunc(middleware.NewRateLimiter(cfg.APIRateLimitPerMin, time.Minute).Middleware())
}

func provideAuthRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) AuthRateLimiterFunc {
	if cfg.RateLimitRedis && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitPrefix+":auth")
		return AuthRateLimiterFunc(middleware.NewScopedRateLimiter(
			redisLimiter,
			cfg.AuthRateLimitPerMin,
			time.Minute,
			middleware.FailClosed,
			"auth",
		).Middleware())
	}
	return AuthRateLimiterFunc(middleware.NewRateLimiter(cfg.AuthRateLimitPerMin, time.Minute).Middleware())
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	permissionHandler *handler.PermissionHandler,
	userTypeHandler *handler.UserTypeHandler,
	jwt *security.JWTManager,
	authSvc service.AuthServiceInterface,
	ac service.Authorizer,
	globalRateLimiter GlobalRateLimiterFunc,
	authRateLimiter AuthRateLimiterFunc,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		RoleHandler:       roleHandler,
		PermissionHandler: permissionHandler,
		UserTypeHandler:   userTypeHandler,
		JWTManager:        jwt,
		AuthService:       authSvc,
		AccessControl:     ac,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		AuthRateLimitRPM:  cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:   cfg.APIRateLimitPerMin,
		GlobalRateLimiter: globalRateLimiter,
		AuthRateLimiter:   authRateLimiter,
		Readiness:         readiness,
		EnableOTelHTTP:    cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func provideReadinessProbeRunner(
	cfg *config.Config,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	objectStore *minio.Client,
) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 3)
	if c := health.NewDBChecker(db); c != nil {
		checkers = append(checkers, c)
	}
	if cfg.RateLimitRedis {
		if c := health.NewRedisChecker(redisClient); c != nil {
			checkers = append(checkers, c)
		}
	}
	if c := health.NewObjectStoreChecker(objectStore); c != nil {
		checkers = append(checkers, c)
	}
	return health.NewProbeRunner(cfg.ReadinessTimeout, cfg.ReadinessGracePeriod, checkers...)
}

func provideApp(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	readiness *health.ProbeRunner,
) *app.App {
	return app.New(cfg, logger, server, runtime, db, redisClient, readiness)
}
