package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planet-cred-api/config"
	"planet-cred-api/services"
)

// GetNotifications returns the current user's notifications, newest first.
func GetNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")

	svc := services.NewNotificationService(config.DB)
	notifications, err := svc.ListForUser(userID.(int))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// MarkNotificationRead flags one of the user's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	userID, _ := c.Get("userID")

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	svc := services.NewNotificationService(config.DB)
	if err := svc.MarkRead(userID.(int), uint(notificationID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
