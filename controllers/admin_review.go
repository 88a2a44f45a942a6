package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"planet-cred-api/config"
	"planet-cred-api/services"
	"planet-cred-api/storage"
)

// newReviewService wires the review workflow against the live database,
// local object storage and the notification mirror.
func newReviewService() *services.ReviewService {
	db := config.DB
	return services.NewReviewService(
		db,
		services.NewRoleService(db, os.Getenv("SUPER_ADMIN_EMAIL")),
		services.NewCertificateService(storage.NewLocalStoreFromEnv()),
		services.NewNotificationService(db),
	)
}

// AdminListSubmissions returns the review queue across all users, newest
// first, optionally narrowed to one mission.
func AdminListSubmissions(c *gin.Context) {
	svc := services.NewSubmissionService(config.DB)
	submissions, err := svc.List(services.SubmissionFilter{
		MissionTitle: c.Query("mission_title"),
	})
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

// ApproveSubmission approves a pending submission: the certificate is
// generated first and the status flips only after the artifact is stored.
func ApproveSubmission(c *gin.Context) {
	userID, _ := c.Get("userID")
	submissionID := c.Param("id")

	submission, err := newReviewService().Approve(c.Request.Context(), userID.(int), submissionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Mission approved and certificate generated",
		"submission": submission,
	})
}

type RejectSubmissionRequest struct {
	Message string `json:"message"`
}

// RejectSubmission rejects a pending submission with the reviewer's
// feedback, or the default message when none is given.
func RejectSubmission(c *gin.Context) {
	userID, _ := c.Get("userID")
	submissionID := c.Param("id")

	var req RejectSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	submission, err := newReviewService().Reject(userID.(int), submissionID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Mission rejected",
		"submission": submission,
	})
}
