package domain

import (
	"time"

	"gorm.io/gorm"
)

// Contact form subject categories offered by the site.
const (
	SubjectGeneralInquiry = "General Inquiry"
	SubjectProductOrder   = "Product Order"
	SubjectPartnership    = "Partnership"
	SubjectSupport        = "Support"
	SubjectFeedback       = "Feedback"
)

// ContactSubjects lists the accepted contact form subjects.
var ContactSubjects = []string{
	SubjectGeneralInquiry,
	SubjectProductOrder,
	SubjectPartnership,
	SubjectSupport,
	SubjectFeedback,
}

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// BeforeCreate hook
func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}

// IsValidSubject reports whether s is one of the accepted subjects.
func IsValidSubject(s string) bool {
	for _, subject := range ContactSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
