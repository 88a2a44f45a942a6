package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"planet-cred-api/config"
	"planet-cred-api/models"
)

// NotificationService records in-app notifications and mirrors them to email
// when SMTP is configured. Notification failures are logged and never fail
// the operation that triggered them.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyReviewOutcome tells the submitter their mission was approved or
// rejected.
func (s *NotificationService) NotifyReviewOutcome(submission *models.MissionSubmission) {
	if submission == nil {
		return
	}

	var title, message, typ string
	switch submission.Status {
	case models.StatusApproved:
		title = "Mission approved"
		message = fmt.Sprintf("Your mission %q has been approved. Your certificate is ready to download.", submission.MissionTitle)
		typ = "success"
	case models.StatusRejected:
		title = "Mission rejected"
		message = fmt.Sprintf("Your mission %q was not approved.", submission.MissionTitle)
		if submission.AdminMessage != nil && *submission.AdminMessage != "" {
			message = fmt.Sprintf("%s Reviewer feedback: %s", message, *submission.AdminMessage)
		}
		typ = "warning"
	default:
		return
	}

	id := submission.SubmissionID
	notification := models.Notification{
		UserID:              submission.UserID,
		Title:               title,
		Message:             message,
		Type:                typ,
		RelatedSubmissionID: &id,
		CreateAt:            time.Now(),
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to create notification for submission %s: %v", id, err)
	}

	if submission.User != nil && submission.User.Email != "" {
		html := fmt.Sprintf("<p>Hi %s,</p><p>%s</p><p>— Planet Cred Climate Action</p>",
			submission.User.DisplayName(), message)
		if err := config.SendMail([]string{submission.User.Email}, title, html); err != nil {
			log.Printf("Warning: failed to send review email for submission %s: %v", id, err)
		}
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("create_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to fetch notifications", err)
	}
	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(userID int, notificationID uint) error {
	now := time.Now()
	res := s.db.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if res.Error != nil {
		return wrapError(KindPersistenceFailure, "Failed to update notification", res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(KindNotFound, "Notification not found")
	}
	return nil
}
