package service

import (
	"errors"
	"time"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/repository"
	"github.com/anbessa/iam-backend/internal/security"

	"gorm.io/gorm"
)

type UserService struct {
	db        *gorm.DB
	users     repository.UserRepository
	userTypes repository.UserTypeRepository
	roles     repository.RoleRepository
	policies  repository.PolicyRepository
	hasher    security.PasswordHasher
}

func NewUserService(
	db *gorm.DB,
	users repository.UserRepository,
	userTypes repository.UserTypeRepository,
	roles repository.RoleRepository,
	policies repository.PolicyRepository,
	hasher security.PasswordHasher,
) *UserService {
	return &UserService{
		db:        db,
		users:     users,
		userTypes: userTypes,
		roles:     roles,
		policies:  policies,
		hasher:    hasher,
	}
}

type CreateUserInput struct {
	UserTypeID     uint
	Name           string
	Username       string
	Password       string
	Email          string
	ProfilePicture string
	CreatedBy      uint
}

// Create runs the creation pipeline: username uniqueness, user-type
// resolution, password hashing, persist. The first two failures are
// field-tagged validation errors; the plaintext password never reaches the
// store.
func (s *UserService) Create(in CreateUserInput) (*domain.User, error) {
	_, err := s.users.FindByUsername(in.Username)
	if err == nil {
		return nil, apperr.ValidationField("username", apperr.MsgUserAlreadyExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	if _, err := s.userTypes.FindByID(in.UserTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ValidationField("user_type_id", apperr.MsgUserTypeNotFound)
		}
		return nil, apperr.Internal(err)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &domain.User{
		UserTypeID:         in.UserTypeID,
		Name:               in.Name,
		Username:           in.Username,
		Email:              in.Email,
		PasswordHash:       digest,
		ProfilePicture:     in.ProfilePicture,
		IsActive:           true,
		LastSeen:           time.Now(),
		LastPasswordChange: time.Now(),
		CreatedBy:          in.CreatedBy,
		UpdatedBy:          in.CreatedBy,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.users.Tx(tx).Create(user)
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			// Lost a race against a concurrent signup for the same username.
			return nil, apperr.ValidationField("username", apperr.MsgUserAlreadyExists)
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *UserService) Activate(code string) (*domain.User, error) {
	return s.setAccountFlag(code, "is_active", true)
}

func (s *UserService) Deactivate(code string) (*domain.User, error) {
	return s.setAccountFlag(code, "is_active", false)
}

func (s *UserService) Lock(code string) (*domain.User, error) {
	return s.setAccountFlag(code, "is_locked", true)
}

func (s *UserService) Unlock(code string) (*domain.User, error) {
	return s.setAccountFlag(code, "is_locked", false)
}

// setAccountFlag flips exactly one boolean field. Idempotent: flipping to
// the current value succeeds and changes nothing.
func (s *UserService) setAccountFlag(code, field string, value bool) (*domain.User, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserNotFound)
		}
		return nil, apperr.Internal(err)
	}
	if err := s.users.UpdateFields(user, map[string]any{field: value}); err != nil {
		return nil, apperr.Internal(err)
	}
	switch field {
	case "is_active":
		user.IsActive = value
	case "is_locked":
		user.IsLocked = value
	}
	return user, nil
}

// AssignRole resolves the user by external code and the role by id, then
// creates the policy row. A missing user is NotFound; a missing role is a
// validation error tagged to role_id.
func (s *UserService) AssignRole(code string, roleID, actorID uint) (*domain.User, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserNotFound)
		}
		return nil, apperr.Internal(err)
	}
	role, err := s.roles.FindByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ValidationField("role_id", apperr.MsgRoleNotFound)
		}
		return nil, apperr.Internal(err)
	}
	if _, err := s.policies.Assign(user.ID, role.ID, actorID); err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *UserService) RemoveRole(code string, roleID uint) (bool, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.NotFound(apperr.MsgUserNotFound)
		}
		return false, apperr.Internal(err)
	}
	role, err := s.roles.FindByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.ValidationField("role_id", apperr.MsgRoleNotFound)
		}
		return false, apperr.Internal(err)
	}
	removed, err := s.policies.Remove(user.ID, role.ID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return removed, nil
}

// ChangePassword verifies the current password before hashing and storing
// the new one. A mismatch is a single validation failure tagged to
// current_password; the stored digest is untouched on any failure path.
func (s *UserService) ChangePassword(code, currentPassword, newPassword string) (*domain.User, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserNotFound)
		}
		return nil, apperr.Internal(err)
	}
	match, err := s.hasher.Compare(currentPassword, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !match {
		return nil, apperr.ValidationField("current_password", apperr.MsgPasswordIncorrect)
	}
	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	fields := map[string]any{
		"password":                  digest,
		"last_password_change_date": time.Now(),
	}
	if err := s.users.UpdateFields(user, fields); err != nil {
		return nil, apperr.Internal(err)
	}
	user.PasswordHash = digest
	return user, nil
}

// ChangeProfilePicture stores the new object key on the user row and
// returns the previous key so the caller can clean up storage.
func (s *UserService) ChangeProfilePicture(code, objectKey string) (*domain.User, string, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFound(apperr.MsgUserNotFound)
		}
		return nil, "", apperr.Internal(err)
	}
	previous := user.ProfilePicture
	if err := s.users.UpdateFields(user, map[string]any{"profile_picture": objectKey}); err != nil {
		return nil, "", apperr.Internal(err)
	}
	user.ProfilePicture = objectKey
	return user, previous, nil
}

func (s *UserService) FindByCode(code string) (*domain.User, error) {
	user, err := s.users.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserNotFound)
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *UserService) Search(filter repository.Filter, order []string) ([]domain.User, error) {
	users, err := s.users.Search(filter, order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.User], error) {
	page, err := s.users.SearchPaged(filter, order, req)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}
