package domain

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscription represents a newsletter signup.
// Email carries a unique index; a duplicate insert surfaces as a
// uniqueness violation that callers treat as "already subscribed".
type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for NewsletterSubscription
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}

// BeforeCreate hook
func (n *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return nil
}
