package domain

import (
	"time"

	"gorm.io/gorm"
)

// PageView represents a single recorded page view
type PageView struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PagePath     string    `gorm:"not null;index" json:"page_path"`
	PageTitle    string    `json:"page_title"`
	Referrer     string    `json:"referrer"`
	UserAgent    string    `json:"user_agent"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Region       string    `json:"region"`
	IPAddress    string    `json:"ip_address"`
	Latitude     string    `json:"latitude"`
	Longitude    string    `json:"longitude"`
	SessionID    string    `gorm:"index" json:"session_id"`
	ScreenWidth  int       `json:"screen_width"`
	ScreenHeight int       `json:"screen_height"`
	Language     string    `json:"language"`
	Timezone     string    `json:"timezone"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}

// BeforeCreate hook
func (p *PageView) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}
