package domain

import (
	"time"

	"gorm.io/gorm"
)

// Permission grants a capability identified by the (type, resource) pair,
// e.g. (Update, Role). Name and code are display metadata; the pair is what
// access checks compare.
type Permission struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Code     string `gorm:"size:64" json:"code"`
	Type     string `gorm:"size:32;not null;index:idx_permissions_type_resource" json:"type"`
	Resource string `gorm:"size:64;not null;index:idx_permissions_type_resource" json:"resource"`

	CreatedBy uint           `json:"created_by"`
	UpdatedBy uint           `json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Permission types.
const (
	PermissionRead    = "Read"
	PermissionCreate  = "Create"
	PermissionUpdate  = "Update"
	PermissionDelete  = "Delete"
	PermissionCheck   = "Check"
	PermissionApprove = "Approve"
)

// IAM resources.
const (
	ResourceUser       = "User"
	ResourceRole       = "Role"
	ResourcePermission = "Permission"
	ResourceUserType   = "User Type"
)
