package models

import "time"

// SubmissionStatus is the closed set of review states. A submission starts
// pending and moves exactly once to approved or rejected.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type MissionSubmission struct {
	SubmissionID       string           `gorm:"primaryKey;column:submission_id;size:36" json:"submission_id"`
	UserID             int              `gorm:"column:user_id" json:"user_id"`
	MissionTitle       string           `gorm:"column:mission_title" json:"mission_title"`
	MissionDescription string           `gorm:"column:mission_description" json:"mission_description"`
	VideoURL           string           `gorm:"column:video_url" json:"video_url"`
	Status             SubmissionStatus `gorm:"column:status" json:"status"`
	AdminMessage       *string          `gorm:"column:admin_message" json:"admin_message,omitempty"`
	CertificateURL     *string          `gorm:"column:certificate_url" json:"certificate_url,omitempty"`
	SubmittedAt        time.Time        `gorm:"column:submitted_at" json:"submitted_at"`
	ReviewedAt         *time.Time       `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy         *int             `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MissionSubmission) TableName() string {
	return "mission_submissions"
}
