package domain

import (
	"time"

	"gorm.io/gorm"
)

// DistributorInquiry represents a distributor partnership inquiry
type DistributorInquiry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BusinessName   string    `gorm:"not null" json:"business_name"`
	ContactName    string    `gorm:"not null" json:"contact_name"`
	Email          string    `gorm:"not null;index" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	WhatsApp       *string   `json:"whatsapp"`
	Location       string    `gorm:"not null" json:"location"`
	BusinessType   string    `gorm:"not null" json:"business_type"`
	ExpectedVolume *string   `json:"expected_volume"`
	Message        *string   `gorm:"type:text" json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for DistributorInquiry
func (DistributorInquiry) TableName() string {
	return "distributor_inquiries"
}

// BeforeCreate hook
func (d *DistributorInquiry) BeforeCreate(tx *gorm.DB) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	return nil
}
