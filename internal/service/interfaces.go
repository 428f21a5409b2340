package service

import (
	"context"

	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/repository"
)

// Authorizer is the guard contract the HTTP middleware depends on. Every
// deny is the Forbidden signal from apperr; allow is a nil error.
type Authorizer interface {
	CheckPermission(principal *domain.User, required Requirement, overrideUserTypes []uint) error
	CheckPermissions(principal *domain.User, required []Requirement, overrideUserTypes []uint) error
	CheckUserType(principal *domain.User, allowedUserTypes []uint) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Principal(id uint) (*domain.User, error)
}

type UserServiceInterface interface {
	Create(in CreateUserInput) (*domain.User, error)
	Activate(code string) (*domain.User, error)
	Deactivate(code string) (*domain.User, error)
	Lock(code string) (*domain.User, error)
	Unlock(code string) (*domain.User, error)
	AssignRole(code string, roleID, actorID uint) (*domain.User, error)
	RemoveRole(code string, roleID uint) (bool, error)
	ChangePassword(code, currentPassword, newPassword string) (*domain.User, error)
	ChangeProfilePicture(code, objectKey string) (*domain.User, string, error)
	FindByCode(code string) (*domain.User, error)
	Search(filter repository.Filter, order []string) ([]domain.User, error)
	SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.User], error)
}

type RoleServiceInterface interface {
	Create(name, description string, actorID uint) (*domain.Role, error)
	AssignPermission(roleID, permissionID, actorID uint) (*domain.Role, error)
	RemovePermission(roleID, permissionID uint) (bool, error)
	FindByID(id uint) (*domain.Role, error)
	Update(id uint, name, description string, actorID uint) (*domain.Role, error)
	Delete(id uint) error
	Search(filter repository.Filter, order []string) ([]domain.Role, error)
	SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.Role], error)
}

type PermissionServiceInterface interface {
	Create(name, ptype, resource, code string, actorID uint) (*domain.Permission, error)
	FindByID(id uint) (*domain.Permission, error)
	Update(id uint, name, code string, actorID uint) (*domain.Permission, error)
	Delete(id uint) error
	Search(filter repository.Filter, order []string) ([]domain.Permission, error)
	SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.Permission], error)
}

type UserTypeServiceInterface interface {
	Create(name, description string, actorID uint) (*domain.UserType, error)
	FindByID(id uint) (*domain.UserType, error)
	Update(id uint, name, description string, actorID uint) (*domain.UserType, error)
	Delete(id uint) error
	Search(filter repository.Filter, order []string) ([]domain.UserType, error)
	SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.UserType], error)
}
