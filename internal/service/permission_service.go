package service

import (
	"errors"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/repository"

	"gorm.io/gorm"
)

type PermissionService struct {
	permissions repository.PermissionRepository
}

func NewPermissionService(permissions repository.PermissionRepository) *PermissionService {
	return &PermissionService{permissions: permissions}
}

func (s *PermissionService) Create(name, ptype, resource, code string, actorID uint) (*domain.Permission, error) {
	perm := &domain.Permission{
		Name:      name,
		Type:      ptype,
		Resource:  resource,
		Code:      code,
		CreatedBy: actorID,
		UpdatedBy: actorID,
	}
	if err := s.permissions.Create(perm); err != nil {
		return nil, apperr.Internal(err)
	}
	return perm, nil
}

func (s *PermissionService) FindByID(id uint) (*domain.Permission, error) {
	perm, err := s.permissions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgPermissionNotFound)
		}
		return nil, apperr.Internal(err)
	}
	return perm, nil
}

func (s *PermissionService) Update(id uint, name, code string, actorID uint) (*domain.Permission, error) {
	perm, err := s.permissions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgPermissionNotFound)
		}
		return nil, apperr.Internal(err)
	}
	fields := map[string]any{"updated_by": actorID}
	if name != "" {
		fields["name"] = name
	}
	if code != "" {
		fields["code"] = code
	}
	if err := s.permissions.UpdateFields(perm, fields); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.FindByID(perm.ID)
}

func (s *PermissionService) Delete(id uint) error {
	if err := s.permissions.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *PermissionService) Search(filter repository.Filter, order []string) ([]domain.Permission, error) {
	perms, err := s.permissions.Search(filter, order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return perms, nil
}

func (s *PermissionService) SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.Permission], error) {
	page, err := s.permissions.SearchPaged(filter, order, req)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}
