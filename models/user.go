package models

import (
	"time"
)

type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName string     `gorm:"column:full_name" json:"full_name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName is the name printed on certificates: the full name when the
// user provided one, otherwise the account email.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
