package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role constants. The two spaced spellings are legacy values still present
// in old tokens and must keep passing the admin gates.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleDeptAdmin  = "DEPT_ADMIN"

	RoleSuperAdminLegacy = "SUPER ADMIN"
	RoleDeptAdminLegacy  = "DEPT ADMIN"
)

// User account status
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
	UserStatusPending  = "PENDING"
)

// User represents a back-office account
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Role         string    `gorm:"type:varchar(50);not null;default:'USER'" json:"role"`
	DepartmentID string    `gorm:"type:varchar(50)" json:"department_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdminRole reports whether role passes the any-admin gate
func IsAdminRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleDeptAdmin, RoleSuperAdminLegacy, RoleDeptAdminLegacy:
		return true
	}
	return false
}

// IsSuperAdminRole reports whether role passes the super-admin-only gate
func IsSuperAdminRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleSuperAdminLegacy
}
