package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	UserTypeID uint     `gorm:"not null;index" json:"user_type_id"`
	UserType   UserType `json:"user_type,omitempty"`

	// Code is the external-facing identifier. It is generated once at
	// creation and never changes; identity-sensitive operations address
	// users by code, not by the numeric id.
	Code string `gorm:"uniqueIndex;size:64;not null" json:"code"`

	Name           string `gorm:"size:255;not null" json:"name"`
	Username       string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email          string `gorm:"size:255" json:"email"`
	PasswordHash   string `gorm:"size:1024;not null;column:password" json:"-"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
	IsLocked       bool   `gorm:"not null;default:false" json:"is_locked"`
	ProfilePicture string `gorm:"size:1024" json:"profile_picture,omitempty"`

	LastSeen           time.Time `json:"last_seen"`
	LastPasswordChange time.Time `gorm:"column:last_password_change_date" json:"last_password_change_date"`

	Roles []Role `gorm:"many2many:policies" json:"roles,omitempty"`

	CreatedBy uint           `json:"created_by"`
	UpdatedBy uint           `json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the immutable external code when the caller did not
// supply one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.Code == "" {
		u.Code = uuid.NewString()
	}
	return nil
}
