package service

import (
	"errors"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/repository"

	"gorm.io/gorm"
)

type UserTypeService struct {
	userTypes repository.UserTypeRepository
}

func NewUserTypeService(userTypes repository.UserTypeRepository) *UserTypeService {
	return &UserTypeService{userTypes: userTypes}
}

// Create rejects a name held by a live user type as a field-tagged
// validation error. A name held only by a soft-deleted row is reclaimed by
// restoring that row, since the unique index spans tombstones.
func (s *UserTypeService) Create(name, description string, actorID uint) (*domain.UserType, error) {
	_, err := s.userTypes.FindByName(name)
	if err == nil {
		return nil, apperr.ValidationField("name", apperr.MsgUserTypeNameTaken)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	tombstone, err := s.userTypes.FindDeletedByName(name)
	if err == nil {
		fields := map[string]any{"description": description, "updated_by": actorID}
		if err := s.userTypes.Restore(tombstone, fields); err != nil {
			return nil, apperr.Internal(err)
		}
		return s.FindByID(tombstone.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	ut := &domain.UserType{
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if err := s.userTypes.Create(ut); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperr.ValidationField("name", apperr.MsgUserTypeNameTaken)
		}
		return nil, apperr.Internal(err)
	}
	return ut, nil
}

func (s *UserTypeService) FindByID(id uint) (*domain.UserType, error) {
	ut, err := s.userTypes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserTypeNotFound)
		}
		return nil, apperr.Internal(err)
	}
	return ut, nil
}

func (s *UserTypeService) Update(id uint, name, description string, actorID uint) (*domain.UserType, error) {
	ut, err := s.userTypes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.MsgUserTypeNotFound)
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
	if err := s.userTypes.UpdateFields(ut, fields); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.FindByID(ut.ID)
}

func (s *UserTypeService) Delete(id uint) error {
	if err := s.userTypes.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *UserTypeService) Search(filter repository.Filter, order []string) ([]domain.UserType, error) {
	types, err := s.userTypes.Search(filter, order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return types, nil
}

func (s *UserTypeService) SearchPaged(filter repository.Filter, order []string, req repository.PageRequest) (*repository.PageResult[domain.UserType], error) {
	page, err := s.userTypes.SearchPaged(filter, order, req)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}
