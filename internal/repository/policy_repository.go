package repository

import (
	"errors"

	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

// PolicyRepository manages user↔role join rows. Assign is idempotent: the
// composite unique index plus FirstOrCreate means the same pair never
// produces a second row.
type PolicyRepository interface {
	Assign(userID, roleID, actorID uint) (created bool, err error)
	Remove(userID, roleID uint) (removed bool, err error)
	Exists(userID, roleID uint) (bool, error)
	Tx(tx *gorm.DB) PolicyRepository
}

type GormPolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) PolicyRepository { return &GormPolicyRepository{db: db} }

func (r *GormPolicyRepository) Tx(tx *gorm.DB) PolicyRepository {
	return &GormPolicyRepository{db: tx}
}

func (r *GormPolicyRepository) Assign(userID, roleID, actorID uint) (bool, error) {
	policy := domain.Policy{UserID: userID, RoleID: roleID}
	res := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).
		Attrs(domain.Policy{CreatedBy: actorID, UpdatedBy: actorID}).
		FirstOrCreate(&policy)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormPolicyRepository) Remove(userID, roleID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).Delete(&domain.Policy{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormPolicyRepository) Exists(userID, roleID uint) (bool, error) {
	var policy domain.Policy
	err := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RolePermissionRepository manages role↔permission join rows with the same
// idempotent-assign contract as PolicyRepository.
type RolePermissionRepository interface {
	Assign(roleID, permissionID, actorID uint) (created bool, err error)
	Remove(roleID, permissionID uint) (removed bool, err error)
	Exists(roleID, permissionID uint) (bool, error)
	Tx(tx *gorm.DB) RolePermissionRepository
}

type GormRolePermissionRepository struct{ db *gorm.DB }

func NewRolePermissionRepository(db *gorm.DB) RolePermissionRepository {
	return &GormRolePermissionRepository{db: db}
}

func (r *GormRolePermissionRepository) Tx(tx *gorm.DB) RolePermissionRepository {
	return &GormRolePermissionRepository{db: tx}
}

func (r *GormRolePermissionRepository) Assign(roleID, permissionID, actorID uint) (bool, error) {
	rp := domain.RolePermission{RoleID: roleID, PermissionID: permissionID}
	res := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Attrs(domain.RolePermission{CreatedBy: actorID, UpdatedBy: actorID}).
		FirstOrCreate(&rp)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRolePermissionRepository) Remove(roleID, permissionID uint) (bool, error) {
	res := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).Delete(&domain.RolePermission{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRolePermissionRepository) Exists(roleID, permissionID uint) (bool, error) {
	var rp domain.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&rp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
