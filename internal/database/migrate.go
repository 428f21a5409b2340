package database

import (
	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates the schema. The join tables are registered explicitly so
// gorm routes the many2many associations through the Policy and
// RolePermission models, which carry audit columns and unique pair indexes.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.User{}, "Roles", &domain.Policy{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&domain.Role{}, "Permissions", &domain.RolePermission{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&domain.UserType{},
		&domain.User{},
		&domain.Role{},
		&domain.Permission{},
		&domain.Policy{},
		&domain.RolePermission{},
	)
}
