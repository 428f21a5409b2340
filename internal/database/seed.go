package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/security"

	"gorm.io/gorm"
)

var seedResources = []string{
	domain.ResourceUser,
	domain.ResourceRole,
	domain.ResourcePermission,
	domain.ResourceUserType,
}

var seedTypes = []string{
	domain.PermissionRead,
	domain.PermissionCreate,
	domain.PermissionUpdate,
	domain.PermissionDelete,
}

type SeedReport struct {
	CreatedUserTypes   int  `json:"created_user_types"`
	CreatedPermissions int  `json:"created_permissions"`
	CreatedRoles       int  `json:"created_roles"`
	BoundPermissions   int  `json:"bound_permissions"`
	CreatedAdmin       bool `json:"created_admin"`
	Noop               bool `json:"noop"`
}

func Seed(db *gorm.DB, adminUsername, adminPassword string) error {
	_, err := SeedSync(db, adminUsername, adminPassword)
	return err
}

// SeedSync is idempotent: every entity is find-or-create, so repeated runs
// converge on the same catalog without duplicating rows.
func SeedSync(db *gorm.DB, adminUsername, adminPassword string) (*SeedReport, error) {
	report := &SeedReport{}

	// The super admin user type must land on the reserved id so the
	// guard override recognizes it.
	superAdmin := domain.UserType{
		ID:          domain.SuperAdminUserTypeID,
		Name:        "Super Admin",
		Description: "Bypasses permission checks on override-enabled routes",
	}
	res := db.Where("id = ?", superAdmin.ID).FirstOrCreate(&superAdmin)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		report.CreatedUserTypes++
	}

	regular := domain.UserType{Name: "Regular", Description: "Standard account"}
	res = db.Where("name = ?", regular.Name).FirstOrCreate(&regular)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		report.CreatedUserTypes++
	}

	for _, resource := range seedResources {
		for _, ptype := range seedTypes {
			p := domain.Permission{
				Name:     fmt.Sprintf("%s %s", ptype, resource),
				Code:     permissionCode(ptype, resource),
				Type:     ptype,
				Resource: resource,
			}
			res := db.Where("type = ? AND resource = ?", p.Type, p.Resource).FirstOrCreate(&p)
			if res.Error != nil {
				return nil, res.Error
			}
			if res.RowsAffected > 0 {
				report.CreatedPermissions++
			}
		}
	}

	adminRole := domain.Role{Name: "Administrator", Description: "Full directory access"}
	res = db.Where("name = ?", adminRole.Name).FirstOrCreate(&adminRole)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		report.CreatedRoles++
	}

	var perms []domain.Permission
	if err := db.Where("resource IN ?", seedResources).Find(&perms).Error; err != nil {
		return nil, err
	}
	for _, p := range perms {
		var count int64
		if err := db.Model(&domain.RolePermission{}).
			Where("role_id = ? AND permission_id = ?", adminRole.ID, p.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			if err := db.Create(&domain.RolePermission{RoleID: adminRole.ID, PermissionID: p.ID}).Error; err != nil {
				return nil, err
			}
			report.BoundPermissions++
		}
	}

	if adminUsername != "" && adminPassword != "" {
		var existing domain.User
		err := db.Where("username = ?", adminUsername).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasher := security.NewArgon2Hasher()
			digest, err := hasher.Hash(adminPassword)
			if err != nil {
				return nil, fmt.Errorf("hash bootstrap admin password: %w", err)
			}
			admin := domain.User{
				UserTypeID:   domain.SuperAdminUserTypeID,
				Name:         "Bootstrap Administrator",
				Username:     adminUsername,
				PasswordHash: digest,
				IsActive:     true,
			}
			if err := db.Create(&admin).Error; err != nil {
				return nil, fmt.Errorf("create bootstrap admin: %w", err)
			}
			report.CreatedAdmin = true
		} else if err != nil {
			return nil, err
		}
	}

	report.Noop = report.CreatedUserTypes == 0 && report.CreatedPermissions == 0 &&
		report.CreatedRoles == 0 && report.BoundPermissions == 0 && !report.CreatedAdmin
	return report, nil
}

func permissionCode(ptype, resource string) string {
	normalize := func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, " ", "_"))
	}
	return normalize(resource) + "_" + normalize(ptype)
}
