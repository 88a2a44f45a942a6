package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"planet-cred-api/models"
)

// RoleService answers role questions against the user_roles table. Reads are
// always fresh lookups so a grant or revoke is visible on the next request.
type RoleService struct {
	db              *gorm.DB
	superAdminEmail string
}

// NewRoleService builds a RoleService. superAdminEmail is the one identity
// allowed to revoke admin roles, supplied at deployment time.
func NewRoleService(db *gorm.DB, superAdminEmail string) *RoleService {
	return &RoleService{db: db, superAdminEmail: superAdminEmail}
}

// IsAdmin reports whether the user holds the admin role.
func (s *RoleService) IsAdmin(userID int) (bool, error) {
	var row models.UserRole
	err := s.db.Where("user_id = ? AND role = ?", userID, models.RoleAdmin).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapError(KindPersistenceFailure, "Failed to look up role", err)
	}
	return true, nil
}

// HasAdmins reports whether any admin exists system-wide.
func (s *RoleService) HasAdmins() (bool, error) {
	var count int64
	if err := s.db.Model(&models.UserRole{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return false, wrapError(KindPersistenceFailure, "Failed to count admins", err)
	}
	return count > 0, nil
}

// BootstrapFirstAdmin grants the admin role to userID, but only while no
// admin exists anywhere. The insert is conditional on that emptiness check
// so two racing bootstrap calls cannot both succeed.
func (s *RoleService) BootstrapFirstAdmin(userID int) error {
	res := s.db.Exec(
		`INSERT INTO user_roles (user_id, role, create_at)
		 SELECT ?, ?, ? FROM DUAL
		 WHERE NOT EXISTS (SELECT 1 FROM user_roles WHERE role = ?)`,
		userID, models.RoleAdmin, time.Now(), models.RoleAdmin,
	)
	if res.Error != nil {
		return wrapError(KindPersistenceFailure, "Failed to create admin role", res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(KindAlreadyInitialized, "An admin already exists in the system")
	}
	return nil
}

// RevokeAdmin removes the admin role from targetUserID. Only the configured
// super admin may call it. Revoking a user who is not an admin is a no-op.
func (s *RoleService) RevokeAdmin(callerEmail string, targetUserID int) error {
	if s.superAdminEmail == "" || !strings.EqualFold(callerEmail, s.superAdminEmail) {
		return newError(KindUnauthorized, "Only the super admin can manage admin roles")
	}

	if err := s.db.Where("user_id = ? AND role = ?", targetUserID, models.RoleAdmin).
		Delete(&models.UserRole{}).Error; err != nil {
		return wrapError(KindPersistenceFailure, "Failed to remove admin role", err)
	}
	return nil
}
