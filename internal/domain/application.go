package domain

import (
	"time"

	"gorm.io/gorm"
)

// JobApplication represents a careers page job application
type JobApplication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `gorm:"not null" json:"last_name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	Age         string    `gorm:"not null" json:"age"`
	Religion    string    `gorm:"not null" json:"religion"`
	Position    string    `gorm:"not null" json:"position"`
	ResumeURL   string    `gorm:"not null" json:"resume_url"`
	CoverLetter string    `gorm:"type:text;not null" json:"cover_letter"`
	LinkedIn    *string   `json:"linkedin"`
	Experience  string    `gorm:"not null" json:"experience"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}

// BeforeCreate hook
func (j *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now()
	}
	return nil
}
