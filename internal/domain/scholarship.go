package domain

import (
	"time"

	"gorm.io/gorm"
)

// Scholarship application review states. Applications start in
// processing and move to successful or rejected by an admin.
const (
	ScholarshipStatusProcessing = "processing"
	ScholarshipStatusSuccessful = "successful"
	ScholarshipStatusRejected   = "rejected"
)

// ScholarshipApplication represents a scholarship program application
type ScholarshipApplication struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FullName    string     `gorm:"not null" json:"full_name"`
	Email       string     `gorm:"not null;index" json:"email"`
	Phone       string     `gorm:"not null" json:"phone"`
	School      string     `gorm:"not null" json:"school"`
	Year        string     `gorm:"not null" json:"year"`
	GradeLevel  string     `gorm:"not null" json:"grade_level"`
	GPA         *string    `json:"gpa"`
	Essay       string     `gorm:"type:text;not null" json:"essay"`
	ImageURL    *string    `json:"image_url"`
	DocumentURL string     `gorm:"not null" json:"document_url"`
	Status      string     `gorm:"default:'processing'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// TableName specifies the table name for ScholarshipApplication
func (ScholarshipApplication) TableName() string {
	return "scholarship_applications"
}

// BeforeCreate hook
func (s *ScholarshipApplication) BeforeCreate(tx *gorm.DB) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.Status == "" {
		s.Status = ScholarshipStatusProcessing
	}
	return nil
}

// BeforeUpdate hook
func (s *ScholarshipApplication) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now()
	s.UpdatedAt = &now
	return nil
}

// IsValidScholarshipStatus reports whether status is a known review state.
func IsValidScholarshipStatus(status string) bool {
	switch status {
	case ScholarshipStatusProcessing, ScholarshipStatusSuccessful, ScholarshipStatusRejected:
		return true
	}
	return false
}
