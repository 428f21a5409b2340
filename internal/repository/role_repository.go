package repository

import (
	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(role *domain.Role) error
	FindByID(id uint) (*domain.Role, error)
	FindByName(name string) (*domain.Role, error)
	FindDeletedByName(name string) (*domain.Role, error)
	Restore(role *domain.Role, fields map[string]any) error
	Search(filter Filter, order []string) ([]domain.Role, error)
	SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.Role], error)
	UpdateFields(role *domain.Role, fields map[string]any) error
	Delete(id uint) error
	Tx(tx *gorm.DB) RoleRepository
}

type GormRoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) RoleRepository { return &GormRoleRepository{db: db} }

func (r *GormRoleRepository) Tx(tx *gorm.DB) RoleRepository { return &GormRoleRepository{db: tx} }

func (r *GormRoleRepository) Create(role *domain.Role) error {
	return r.db.Create(role).Error
}

func (r *GormRoleRepository) FindByID(id uint) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByName(name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindDeletedByName looks up a soft-deleted row holding the given name. The
// unique index spans tombstones, so a live insert of the same name collides
// with it until the row is restored or hard-deleted.
func (r *GormRoleRepository) FindDeletedByName(name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.Unscoped().
		Where("name = ? AND deleted_at IS NOT NULL", name).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRoleRepository) Restore(role *domain.Role, fields map[string]any) error {
	updates := map[string]any{"deleted_at": nil}
	for k, v := range fields {
		updates[k] = v
	}
	return r.db.Unscoped().Model(role).Updates(updates).Error
}

func (r *GormRoleRepository) Search(filter Filter, order []string) ([]domain.Role, error) {
	q := ApplyFilter(r.db, filter).Preload("Permissions")
	for _, o := range order {
		q = q.Order(o)
	}
	var roles []domain.Role
	err := q.Find(&roles).Error
	return roles, err
}

func (r *GormRoleRepository) SearchPaged(filter Filter, order []string, req PageRequest) (*PageResult[domain.Role], error) {
	return Paginate[domain.Role](r.db, filter, order, []string{"Permissions"}, req)
}

func (r *GormRoleRepository) UpdateFields(role *domain.Role, fields map[string]any) error {
	return r.db.Model(role).Updates(fields).Error
}

func (r *GormRoleRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Role{}, id).Error
}
