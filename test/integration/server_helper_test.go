package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anbessa/iam-backend/internal/database"
	"github.com/anbessa/iam-backend/internal/http/handler"
	"github.com/anbessa/iam-backend/internal/http/router"
	"github.com/anbessa/iam-backend/internal/repository"
	"github.com/anbessa/iam-backend/internal/security"
	"github.com/anbessa/iam-backend/internal/service"
)

const (
	adminUsername = "root"
	adminPassword = "root-password"
	jwtTestSecret = "0123456789abcdef0123456789abcdef"
)

type serverEnv struct {
	db     *gorm.DB
	server *httptest.Server
	client *http.Client
}

type serverOptions struct {
	authRateLimit func(http.Handler) http.Handler
	storage       service.ProfilePictureStorage
}

func newServerEnv(t *testing.T) *serverEnv {
	return newServerEnvWithOptions(t, serverOptions{})
}

func newServerEnvWithOptions(t *testing.T, opts serverOptions) *serverEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db, adminUsername, adminPassword); err != nil {
		t.Fatalf("seed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	userTypeRepo := repository.NewUserTypeRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	rolePermRepo := repository.NewRolePermissionRepository(db)

	hasher := security.NewArgon2Hasher()
	jwtMgr := security.NewJWTManager("iam-backend", "iam-clients", jwtTestSecret, time.Hour)

	accessControl := service.NewAccessControl()
	userSvc := service.NewUserService(db, userRepo, userTypeRepo, roleRepo, policyRepo, hasher)
	roleSvc := service.NewRoleService(roleRepo, permRepo, rolePermRepo)
	permSvc := service.NewPermissionService(permRepo)
	userTypeSvc := service.NewUserTypeService(userTypeRepo)
	authSvc := service.NewAuthService(userRepo, hasher, jwtMgr)

	h := router.NewRouter(router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authSvc, userSvc, opts.storage),
		UserHandler:       handler.NewUserHandler(userSvc),
		RoleHandler:       handler.NewRoleHandler(roleSvc),
		PermissionHandler: handler.NewPermissionHandler(permSvc),
		UserTypeHandler:   handler.NewUserTypeHandler(userTypeSvc),
		JWTManager:        jwtMgr,
		AuthService:       authSvc,
		AccessControl:     accessControl,
		AuthRateLimitRPM:  1000,
		APIRateLimitRPM:   10000,
		AuthRateLimiter:   opts.authRateLimit,
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &serverEnv{db: db, server: srv, client: srv.Client()}
}

func (e *serverEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func (e *serverEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, resp.StatusCode, raw)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("empty token in %s", raw)
	}
	return body.Token
}

// createUser provisions a user through the API as the given admin token and
// returns its external code.
func (e *serverEnv) createUser(t *testing.T, token, name, username, password string, userTypeID uint) string {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/api/v1/users", token, map[string]any{
		"name":         name,
		"username":     username,
		"password":     password,
		"user_type_id": userTypeID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user %s: status %d body %s", username, resp.StatusCode, raw)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode created user: %v", err)
	}
	return body.Code
}
