package controllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"planet-cred-api/config"
	"planet-cred-api/services"
)

func newRoleService() *services.RoleService {
	return services.NewRoleService(config.DB, os.Getenv("SUPER_ADMIN_EMAIL"))
}

// GetAdminSetupStatus reports whether the one-time admin bootstrap is still
// open.
func GetAdminSetupStatus(c *gin.Context) {
	hasAdmins, err := newRoleService().HasAdmins()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"has_admins": hasAdmins,
	})
}

// BootstrapAdmin makes the caller the first admin. Once any admin exists the
// endpoint refuses every caller.
func BootstrapAdmin(c *gin.Context) {
	userID, _ := c.Get("userID")

	if err := newRoleService().BootstrapFirstAdmin(userID.(int)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You are now an admin",
	})
}

// RevokeAdmin strips the admin role from a user. Restricted to the super
// admin configured at deployment time.
func RevokeAdmin(c *gin.Context) {
	email, _ := c.Get("email")

	targetUserID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := newRoleService().RevokeAdmin(email.(string), targetUserID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin role removed",
	})
}
