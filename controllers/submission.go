package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planet-cred-api/config"
	"planet-cred-api/models"
	"planet-cred-api/services"
)

type CreateSubmissionRequest struct {
	MissionTitle       string `json:"mission_title" binding:"required"`
	MissionDescription string `json:"mission_description"`
	VideoURL           string `json:"video_url" binding:"required,url"`
}

// CreateSubmission files a new mission submission for the current user.
// Users with three missions already under review are turned away.
func CreateSubmission(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSubmissionService(config.DB)
	submission, err := svc.Create(userID.(int), req.MissionTitle, req.MissionDescription, req.VideoURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Mission submitted for review",
		"submission": submission,
	})
}

// GetSubmissions returns the current user's submissions, newest first.
func GetSubmissions(c *gin.Context) {
	userID, _ := c.Get("userID")
	uid := userID.(int)

	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.List(services.SubmissionFilter{UserID: &uid})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetDashboardStats returns the user's submission counts per review state.
func GetDashboardStats(c *gin.Context) {
	userID, _ := c.Get("userID")

	svc := services.NewSubmissionService(config.DB)
	counts, err := svc.StatusCounts(userID.(int))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"pending":  counts[models.StatusPending],
		"approved": counts[models.StatusApproved],
		"rejected": counts[models.StatusRejected],
		"active_limit": gin.H{
			"used": counts[models.StatusPending],
			"max":  services.MaxPendingSubmissions,
		},
	})
}
