package domain

import "time"

// Policy is the audited join row for "user holds role". The composite unique
// index enforces one row per (user, role) pair; removal hard-deletes the row
// so a later re-assignment does not collide with a tombstone.
type Policy struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_policies_user_role;not null" json:"user_id"`
	RoleID uint `gorm:"uniqueIndex:idx_policies_user_role;not null" json:"role_id"`

	CreatedBy uint      `json:"created_by"`
	UpdatedBy uint      `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RolePermission is the audited join row for "role grants permission".
// Uniqueness mirrors Policy.
type RolePermission struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RoleID       uint `gorm:"uniqueIndex:idx_role_permissions_pair;not null" json:"role_id"`
	PermissionID uint `gorm:"uniqueIndex:idx_role_permissions_pair;not null" json:"permission_id"`

	CreatedBy uint      `json:"created_by"`
	UpdatedBy uint      `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
