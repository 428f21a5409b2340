package repository

import (
	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	Create(perm *domain.Permission) error
	FindByID(id uint) (*domain.Permission, error)
	FindByPair(ptype, resource string) (*domain.Permission, error)
	Search(filter Filter, order []string) ([]domain.Permission, error)
	SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.Permission], error)
	UpdateFields(perm *domain.Permission, fields map[string]any) error
	Delete(id uint) error
	Tx(tx *gorm.DB) PermissionRepository
}

type GormPermissionRepository struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &GormPermissionRepository{db: db}
}

func (r *GormPermissionRepository) Tx(tx *gorm.DB) PermissionRepository {
	return &GormPermissionRepository{db: tx}
}

func (r *GormPermissionRepository) Create(perm *domain.Permission) error {
	return r.db.Create(perm).Error
}

func (r *GormPermissionRepository) FindByID(id uint) (*domain.Permission, error) {
	var p domain.Permission
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPermissionRepository) FindByPair(ptype, resource string) (*domain.Permission, error) {
	var p domain.Permission
	err := r.db.Where("type = ? AND resource = ?", ptype, resource).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPermissionRepository) Search(filter Filter, order []string) ([]domain.Permission, error) {
	q := ApplyFilter(r.db, filter)
	for _, o := range order {
		q = q.Order(o)
	}
	var perms []domain.Permission
	err := q.Find(&perms).Error
	return perms, err
}

func (r *GormPermissionRepository) SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.Permission], error) {
	return Paginate[domain.Permission](r.db, filter, order, nil, req)
}

func (r *GormPermissionRepository) UpdateFields(perm *domain.Permission, fields map[string]any) error {
	return r.db.Model(perm).Updates(fields).Error
}

func (r *GormPermissionRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Permission{}, id).Error
}
