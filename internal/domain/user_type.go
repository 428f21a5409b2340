package domain

import (
	"time"

	"gorm.io/gorm"
)

// UserType classifies users. A distinguished type (seeded as "Super Admin")
// bypasses permission checks entirely via the guard override lists.
type UserType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	CreatedBy uint           `json:"created_by"`
	UpdatedBy uint           `json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SuperAdminUserTypeID is the seeded identifier of the override user type.
const SuperAdminUserTypeID uint = 1
