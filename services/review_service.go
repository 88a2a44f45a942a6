package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"planet-cred-api/models"
)

// DefaultRejectMessage is stored when a reviewer rejects without feedback.
const DefaultRejectMessage = "Sorry, you have not passed the mission."

// certificateTimeout bounds the certificate upload during approval. A
// timed-out approval leaves the submission pending and is safe to retry.
const certificateTimeout = 30 * time.Second

// ReviewService drives the one-shot review transition of a submission:
// pending to approved (with a certificate) or pending to rejected (with a
// message). Both paths finish with a conditional update guarded on the
// pending state, so concurrent reviewers cannot both win.
type ReviewService struct {
	db            *gorm.DB
	roles         *RoleService
	certificates  *CertificateService
	notifications *NotificationService
	certTimeout   time.Duration
	now           func() time.Time
}

func NewReviewService(db *gorm.DB, roles *RoleService, certificates *CertificateService, notifications *NotificationService) *ReviewService {
	return &ReviewService{
		db:            db,
		roles:         roles,
		certificates:  certificates,
		notifications: notifications,
		certTimeout:   certificateTimeout,
		now:           time.Now,
	}
}

// Approve generates a certificate for the submission and marks it approved.
// The certificate is produced before the status flips: if generation or the
// upload fails, the submission stays pending and the error reports
// GenerationFailed so the reviewer can retry.
func (s *ReviewService) Approve(ctx context.Context, reviewerID int, submissionID string) (*models.MissionSubmission, error) {
	submission, err := s.loadForReview(reviewerID, submissionID)
	if err != nil {
		return nil, err
	}

	displayName := submission.User.DisplayName()

	genCtx, cancel := context.WithTimeout(ctx, s.certTimeout)
	defer cancel()
	certificateURL, err := s.certificates.Generate(genCtx, submission.UserID, submission.SubmissionID, displayName, submission.MissionTitle)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, wrapError(KindGenerationFailed, "Failed to generate certificate", err)
	}

	now := s.now()
	res := s.db.Model(&models.MissionSubmission{}).
		Where("submission_id = ? AND status = ?", submissionID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":          models.StatusApproved,
			"certificate_url": certificateURL,
			"reviewed_at":     now,
			"reviewed_by":     reviewerID,
		})
	if res.Error != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to update submission", res.Error)
	}
	if res.RowsAffected == 0 {
		// Another reviewer finished first. The regenerated certificate
		// overwrote the same key, so nothing is left to clean up.
		return nil, newError(KindInvalidState, "Submission has already been reviewed")
	}

	submission.Status = models.StatusApproved
	submission.CertificateURL = &certificateURL
	submission.ReviewedAt = &now
	submission.ReviewedBy = &reviewerID

	if s.notifications != nil {
		s.notifications.NotifyReviewOutcome(submission)
	}
	return submission, nil
}

// Reject marks the submission rejected with the reviewer's message, falling
// back to DefaultRejectMessage when none is given.
func (s *ReviewService) Reject(reviewerID int, submissionID, message string) (*models.MissionSubmission, error) {
	submission, err := s.loadForReview(reviewerID, submissionID)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultRejectMessage
	}

	now := s.now()
	res := s.db.Model(&models.MissionSubmission{}).
		Where("submission_id = ? AND status = ?", submissionID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":        models.StatusRejected,
			"admin_message": message,
			"reviewed_at":   now,
			"reviewed_by":   reviewerID,
		})
	if res.Error != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to update submission", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, newError(KindInvalidState, "Submission has already been reviewed")
	}

	submission.Status = models.StatusRejected
	submission.AdminMessage = &message
	submission.ReviewedAt = &now
	submission.ReviewedBy = &reviewerID

	if s.notifications != nil {
		s.notifications.NotifyReviewOutcome(submission)
	}
	return submission, nil
}

// loadForReview checks the reviewer's admin role, loads the submission with
// its submitter and confirms it is still awaiting review.
func (s *ReviewService) loadForReview(reviewerID int, submissionID string) (*models.MissionSubmission, error) {
	isAdmin, err := s.roles.IsAdmin(reviewerID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, newError(KindUnauthorized, "Admin access required")
	}

	var submission models.MissionSubmission
	err = s.db.Preload("User").
		Where("submission_id = ?", submissionID).
		First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Submission not found")
	}
	if err != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to fetch submission", err)
	}

	if submission.Status != models.StatusPending {
		return nil, newError(KindInvalidState, "Only submissions awaiting review can be reviewed")
	}

	// Make sure the submitter is loaded; the display name goes on the
	// certificate and the email carries the outcome.
	if submission.User == nil {
		var submitter models.User
		if err := s.db.Where("user_id = ?", submission.UserID).First(&submitter).Error; err != nil {
			return nil, wrapError(KindPersistenceFailure, "Failed to fetch submitter", err)
		}
		submission.User = &submitter
	}

	return &submission, nil
}
