package models

import "time"

// RoleAdmin is the only role tag the system currently grants.
const RoleAdmin = "admin"

// UserRole is a (user, role) grant. At most one row may exist per pair.
type UserRole struct {
	RoleID   int       `gorm:"primaryKey;column:role_id" json:"role_id"`
	UserID   int       `gorm:"column:user_id;uniqueIndex:idx_user_role" json:"user_id"`
	Role     string    `gorm:"column:role;uniqueIndex:idx_user_role" json:"role"`
	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
