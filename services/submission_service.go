package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planet-cred-api/models"
)

// MaxPendingSubmissions caps how many missions a user can have under review
// at once.
const MaxPendingSubmissions = 3

// SubmissionFilter narrows List results. A nil UserID means all users; an
// empty MissionTitle means all missions.
type SubmissionFilter struct {
	UserID       *int
	MissionTitle string
}

// SubmissionService creates and lists mission submissions and enforces the
// pending-submission cap.
type SubmissionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db, now: time.Now}
}

// Create persists a new pending submission for the user. It fails with
// LimitExceeded, without writing anything, when the user already has
// MaxPendingSubmissions submissions awaiting review. The count and the
// insert run in one transaction with the counted rows locked, so two racing
// creates cannot both slip under the cap.
func (s *SubmissionService) Create(userID int, missionTitle, missionDescription, videoURL string) (*models.MissionSubmission, error) {
	missionTitle = strings.TrimSpace(missionTitle)
	if missionTitle == "" {
		return nil, newError(KindInvalidState, "Mission title is required")
	}
	if strings.TrimSpace(videoURL) == "" {
		return nil, newError(KindInvalidState, "Video evidence is required")
	}

	submission := models.MissionSubmission{
		SubmissionID:       uuid.NewString(),
		UserID:             userID,
		MissionTitle:       missionTitle,
		MissionDescription: strings.TrimSpace(missionDescription),
		VideoURL:           videoURL,
		Status:             models.StatusPending,
		SubmittedAt:        s.now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pending int64
		if err := tx.Model(&models.MissionSubmission{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND status = ?", userID, models.StatusPending).
			Count(&pending).Error; err != nil {
			return wrapError(KindPersistenceFailure, "Failed to count active missions", err)
		}
		if pending >= MaxPendingSubmissions {
			return newError(KindLimitExceeded,
				"You can only have 3 active missions at a time. Please complete your current missions first.")
		}
		if err := tx.Create(&submission).Error; err != nil {
			return wrapError(KindPersistenceFailure, "Failed to save submission", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns submissions matching the filter, newest first. The submitter
// is preloaded so review queues can show who filed each mission.
func (s *SubmissionService) List(filter SubmissionFilter) ([]models.MissionSubmission, error) {
	query := s.db.Preload("User")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.MissionTitle != "" {
		query = query.Where("mission_title = ?", filter.MissionTitle)
	}

	var submissions []models.MissionSubmission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to fetch submissions", err)
	}
	return submissions, nil
}

// StatusCounts returns how many submissions the user has in each state.
func (s *SubmissionService) StatusCounts(userID int) (map[models.SubmissionStatus]int64, error) {
	type row struct {
		Status models.SubmissionStatus
		Total  int64
	}
	var rows []row
	if err := s.db.Model(&models.MissionSubmission{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, wrapError(KindPersistenceFailure, "Failed to count submissions", err)
	}

	counts := map[models.SubmissionStatus]int64{
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
