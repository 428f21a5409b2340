package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	repogomock "github.com/anbessa/iam-backend/internal/repository/gomock"
	"github.com/anbessa/iam-backend/internal/security"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testJWTManager() *security.JWTManager {
	return security.NewJWTManager("iam-backend", "iam-clients", "0123456789abcdef0123456789abcdef", time.Hour)
}

func TestAuthServiceLogin(t *testing.T) {
	hasher := security.NewArgon2Hasher()
	digest, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	t.Run("unknown username is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Login(context.Background(), "ghost", "whatever")
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindByUsername("admin").Return(&domain.User{ID: 1, Username: "admin", PasswordHash: digest, IsActive: true}, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Login(context.Background(), "admin", "not it")
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("inactive account is unauthorized even with the right password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindByUsername("admin").Return(&domain.User{ID: 1, Username: "admin", PasswordHash: digest, IsActive: false}, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Login(context.Background(), "admin", "s3cret")
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("locked account is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindByUsername("admin").Return(&domain.User{ID: 1, Username: "admin", PasswordHash: digest, IsActive: true, IsLocked: true}, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Login(context.Background(), "admin", "s3cret")
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("success issues a parseable token and returns the principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		stored := &domain.User{ID: 1, Code: "c-1", Username: "admin", PasswordHash: digest, IsActive: true}
		principal := &domain.User{ID: 1, Code: "c-1", Username: "admin", IsActive: true, Roles: []domain.Role{{Name: "Administrator"}}}
		users.EXPECT().FindByUsername("admin").Return(stored, nil)
		users.EXPECT().UpdateFields(stored, gomock.Any()).Return(nil)
		users.EXPECT().FindPrincipal(uint(1)).Return(principal, nil)
		mgr := testJWTManager()
		svc := NewAuthService(users, hasher, mgr)

		result, err := svc.Login(context.Background(), "admin", "s3cret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.User != principal {
			t.Fatal("expected the eagerly loaded principal on the result")
		}
		if result.ExpiresAt.Before(time.Now()) {
			t.Fatalf("token already expired: %v", result.ExpiresAt)
		}
		claims, err := mgr.Parse(result.Token)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		id, err := claims.UserID()
		if err != nil || id != 1 {
			t.Fatalf("unexpected subject: %v %v", id, err)
		}
		if claims.Code != "c-1" {
			t.Fatalf("unexpected code claim: %q", claims.Code)
		}
	})

	t.Run("failed last_seen write does not fail the login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		stored := &domain.User{ID: 1, Code: "c-1", Username: "admin", PasswordHash: digest, IsActive: true}
		users.EXPECT().FindByUsername("admin").Return(stored, nil)
		users.EXPECT().UpdateFields(stored, gomock.Any()).Return(errors.New("write timeout"))
		users.EXPECT().FindPrincipal(uint(1)).Return(stored, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		result, err := svc.Login(context.Background(), "admin", "s3cret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.Token == "" {
			t.Fatal("expected a token despite the bookkeeping failure")
		}
	})
}

func TestAuthServicePrincipal(t *testing.T) {
	hasher := security.NewArgon2Hasher()

	t.Run("missing user is unauthorized, not a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindPrincipal(uint(99)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Principal(99)
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("deactivated principal is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		users.EXPECT().FindPrincipal(uint(1)).Return(&domain.User{ID: 1, IsActive: false}, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		_, err := svc.Principal(1)
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("active principal passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repogomock.NewMockUserRepository(ctrl)
		loaded := &domain.User{ID: 1, IsActive: true, UserType: domain.UserType{ID: 2, Name: "Regular"}}
		users.EXPECT().FindPrincipal(uint(1)).Return(loaded, nil)
		svc := NewAuthService(users, hasher, testJWTManager())

		user, err := svc.Principal(1)
		if err != nil {
			t.Fatalf("Principal: %v", err)
		}
		if user != loaded {
			t.Fatal("expected the loaded principal")
		}
	})
}
