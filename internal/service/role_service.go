package service

import (
	"errors"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/repository"

	"gorm.io/gorm"
)

type RoleService struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
	rolePerms   repository.RolePermissionRepository
}

func NewRoleService(
	roles repository.RoleRepository,
	permissions repository.PermissionRepository,
	rolePerms repository.RolePermissionRepository,
) *RoleService {
	return &RoleService{roles: roles, permissions: permissions, rolePerms: rolePerms}
}

// Create is find-or-create by name: an existing role is returned as a
// success, not a duplicate error. A soft-deleted role still holds the unique
// name, so the tombstone is restored instead of inserting against it.
func (s *RoleService) Create(name, description string, actorID uint) (*domain.Role, error) {
	existing, err := s.roles.FindByName(name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	tombstone, err := s.roles.FindDeletedByName(name)
	if err == nil {
		fields := map[string]any{"description": description, "updated_by": actorID}
		if err := s.roles.Restore(tombstone, fields); err != nil {
			return nil, apperr.Internal(err)
		}
		revived, err := s.roles.FindByID(tombstone.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return revived, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	role := &domain.Role{
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if err := s.roles.Create(role); err != nil {
		if repository.IsDuplicateKey(err) {
			// Lost a create race; the winner's row is the result.
			if winner, ferr := s.roles.FindByName(name); ferr == nil {
				return winner, nil
			}
			return nil, apperr.ValidationField("name", apperr.MsgRoleNameTaken)
		}
		return nil, apperr.Internal(err)
	}
	return role, nil
}

// AssignPermission resolves both sides before touching the join table; each
// missing resolution is a validation error tagged to its id field. Returns
// the role with its refreshed permission set, not the join row.
func (s *RoleService) AssignPermission(roleID, permissionID, actorID uint) (*domain.Role, error) {
	role, err := s.roles.FindByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ValidationField("role_id", apperr.MsgRoleNotFound)
		}
		return nil, apperr.Internal(err)
	}
	perm, err := s.permissions.FindByID(permissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ValidationField("permission_id", apperr.MsgPermissionNotFound)
		}
		return nil, apperr.Internal(err)
	}
	if _, err := s.rolePerms.Assign(role.ID, perm.ID, actorID); err != nil {
		return nil, apperr.Internal(err)
	}
	reloaded, err := s.roles.FindByID(role.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return reloaded, nil
}

func (s *RoleService) RemovePermission(roleID, permissionID uint) (bool, error) {
	role, err := s.roles.FindByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.ValidationField("role_id", apperr.MsgRoleNotFound)
		}
		return false, apperr.Internal(err)
	}
	perm, err := s.permissions.FindByID(permissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.ValidationField("permission_id", apperr.MsgPermissionNotFound)
		}
		return false, apperr.Internal(err)
	}
	removed, err := s.rolePerms.Remove(role.ID, perm.ID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return removed, nil
}

func (s *RoleService) FindByID(id uint) (*domain.Role, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgRoleNotFound)
		}
		return nil, apperr.Internal(err)
	}
	return role, nil
}

func (s *RoleService) Update(id uint, name, description string, actorID uint) (*domain.Role, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgRoleNotFound)
		}
		return nil, apperr.Internal(err)
	}
	fields := map[string]any{"updated_by": actorID}
	if name != "" {
		fields["name"] = name
	}
	if description != "" {
		fields["description"] = description
	}
	if err := s.roles.UpdateFields(role, fields); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.FindByID(role.ID)
}

func (s *RoleService) Delete(id uint) error {
	if err := s.roles.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *RoleService) Search(filter repository.Filter, order []string) ([]domain.Role, error) {
	roles, err := s.roles.Search(filter, order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return roles, nil
}

func (s *RoleService) SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.Role], error) {
	page, err := s.roles.SearchPaged(filter, order, req)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}
