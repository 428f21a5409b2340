package repository

import (
	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

type UserTypeRepository interface {
	Create(ut *domain.UserType) error
	FindByID(id uint) (*domain.UserType, error)
	FindByName(name string) (*domain.UserType, error)
	FindDeletedByName(name string) (*domain.UserType, error)
	Restore(ut *domain.UserType, fields map[string]any) error
	Search(filter Filter, order []string) ([]domain.UserType, error)
	SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.UserType], error)
	UpdateFields(ut *domain.UserType, fields map[string]any) error
	Delete(id uint) error
	Tx(tx *gorm.DB) UserTypeRepository
}

type GormUserTypeRepository struct{ db *gorm.DB }

func NewUserTypeRepository(db *gorm.DB) UserTypeRepository {
	return &GormUserTypeRepository{db: db}
}

func (r *GormUserTypeRepository) Tx(tx *gorm.DB) UserTypeRepository {
	return &GormUserTypeRepository{db: tx}
}

func (r *GormUserTypeRepository) Create(ut *domain.UserType) error {
	return r.db.Create(ut).Error
}

func (r *GormUserTypeRepository) FindByID(id uint) (*domain.UserType, error) {
	var ut domain.UserType
	if err := r.db.First(&ut, id).Error; err != nil {
		return nil, err
	}
	return &ut, nil
}

func (r *GormUserTypeRepository) FindByName(name string) (*domain.UserType, error) {
	var ut domain.UserType
	if err := r.db.Where("name = ?", name).First(&ut).Error; err != nil {
		return nil, err
	}
	return &ut, nil
}

func (r *GormUserTypeRepository) FindDeletedByName(name string) (*domain.UserType, error) {
	var ut domain.UserType
	err := r.db.Unscoped().
		Where("name = ? AND deleted_at IS NOT NULL", name).
		First(&ut).Error
	if err != nil {
		return nil, err
	}
	return &ut, nil
}

func (r *GormUserTypeRepository) Restore(ut *domain.UserType, fields map[string]any) error {
	updates := map[string]any{"deleted_at": nil}
	for k, v := range fields {
		updates[k] = v
	}
	return r.db.Unscoped().Model(ut).Updates(updates).Error
}

func (r *GormUserTypeRepository) Search(filter Filter, order []string) ([]domain.UserType, error) {
	q := ApplyFilter(r.db, filter)
	for _, o := range order {
		q = q.Order(o)
	}
	var types []domain.UserType
	err := q.Find(&types).Error
	return types, err
}

func (r *GormUserTypeRepository) SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.UserType], error) {
	return Paginate[domain.UserType](r.db, filter, order, nil, req)
}

func (r *GormUserTypeRepository) UpdateFields(ut *domain.UserType, fields map[string]any) error {
	return r.db.Model(ut).Updates(fields).Error
}

func (r *GormUserTypeRepository) Delete(id uint) error {
	return r.db.Delete(&domain.UserType{}, id).Error
}
