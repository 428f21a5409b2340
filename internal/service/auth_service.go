package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/repository"
	"github.com/anbessa/iam-backend/internal/security"

	"gorm.io/gorm"
)

type AuthService struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	tokens *security.JWTManager
}

func NewAuthService(users repository.UserRepository, hasher security.PasswordHasher, tokens *security.JWTManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

type LoginResult struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Login authenticates by username and password. Bad credentials, inactive
// accounts, and locked accounts are all Unauthorized; the three cases carry
// distinct messages but the same kind so callers cannot tell which
// usernames exist by status code.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordLoginAttempt(ctx, "unknown_user")
			return nil, apperr.Unauthorized(apperr.MsgAuthentication)
		}
		return nil, apperr.Internal(err)
	}
	match, err := s.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !match {
		observability.RecordLoginAttempt(ctx, "bad_password")
		return nil, apperr.Unauthorized(apperr.MsgAuthentication)
	}
	if !user.IsActive {
		observability.RecordLoginAttempt(ctx, "inactive")
		return nil, apperr.Unauthorized(apperr.MsgAccountInactive)
	}
	if user.IsLocked {
		observability.RecordLoginAttempt(ctx, "locked")
		return nil, apperr.Unauthorized(apperr.MsgAccountLocked)
	}

	token, expires, err := s.tokens.Issue(user.ID, user.Code)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	// Bookkeeping only; a stale last_seen must not fail the login.
	if err := s.users.UpdateFields(user, map[string]any{"last_seen": time.Now()}); err != nil {
		slog.WarnContext(ctx, "failed to update last_seen", "user_id", user.ID, "error", err)
	}
	observability.RecordLoginAttempt(ctx, "success")

	principal, err := s.users.FindPrincipal(user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginResult{User: principal, Token: token, ExpiresAt: expires}, nil
}

// Principal resolves the authenticated user with user type, roles, and
// permissions eagerly attached. The auth middleware calls this once per
// request, before any guard runs.
func (s *AuthService) Principal(id uint) (*domain.User, error) {
	user, err := s.users.FindPrincipal(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized(apperr.MsgUnauthorized)
		}
		return nil, apperr.Internal(err)
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized(apperr.MsgAccountInactive)
	}
	if user.IsLocked {
		return nil, apperr.Unauthorized(apperr.MsgAccountLocked)
	}
	return user, nil
}
