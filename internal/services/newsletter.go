package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"dovvia/internal/domain"
	"dovvia/internal/metrics"
	apperrors "dovvia/pkg/errors"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService struct {
	db *gorm.DB
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(db *gorm.DB) *NewsletterService {
	return &NewsletterService{db: db}
}

// NewsletterSubscribePayload is the newsletter form input.
type NewsletterSubscribePayload struct {
	Email string `json:"email"`
}

// NewsletterSubscribeResult is returned to the subscribing visitor.
// AlreadySubscribed is true when the email was subscribed before this
// request; that outcome is informational, not an error.
type NewsletterSubscribeResult struct {
	Message           string `json:"message"`
	AlreadySubscribed bool   `json:"already_subscribed"`
}

// Subscribe stores a newsletter subscription. A uniqueness violation
// on the email key is reported as "already subscribed" rather than a
// failure; exactly one row exists per email either way.
func (s *NewsletterService) Subscribe(ctx context.Context, p *NewsletterSubscribePayload) (*NewsletterSubscribeResult, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	log.Printf("[NEWSLETTER] Subscribe request: email=%s", email)

	if !emailRegex.MatchString(email) {
		log.Printf("[NEWSLETTER] Subscribe failed: invalid email %q", email)
		return nil, apperrors.New(apperrors.ErrCodeValidation, "invalid email address")
	}

	subscription := &domain.NewsletterSubscription{Email: email}
	if err := s.db.WithContext(ctx).Create(subscription).Error; err != nil {
		if isDuplicateKey(err) {
			log.Printf("[NEWSLETTER] Duplicate subscription for email=%s", email)
			return &NewsletterSubscribeResult{
				Message:           "This email is already subscribed to our newsletter.",
				AlreadySubscribed: true,
			}, nil
		}
		log.Printf("[NEWSLETTER] Subscribe failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	log.Printf("[NEWSLETTER] Subscribe successful: id=%d, email=%s", subscription.ID, email)
	metrics.RecordFormSubmission("newsletter")

	return &NewsletterSubscribeResult{
		Message: "Thank you for subscribing to our newsletter.",
	}, nil
}

// List returns stored subscriptions, newest first.
func (s *NewsletterService) List(ctx context.Context, skip, limit int) ([]domain.NewsletterSubscription, error) {
	log.Printf("[NEWSLETTER] List request: skip=%d, limit=%d", skip, limit)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var subscriptions []domain.NewsletterSubscription
	if err := s.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit).Find(&subscriptions).Error; err != nil {
		log.Printf("[NEWSLETTER] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch subscriptions: %w", err)
	}

	log.Printf("[NEWSLETTER] List successful: returned %d subscriptions", len(subscriptions))
	return subscriptions, nil
}

// isDuplicateKey reports whether err is a uniqueness violation. GORM
// translates driver errors to ErrDuplicatedKey; the string checks
// cover drivers that slip through translation (sqlite "UNIQUE
// constraint failed", postgres error code 23505).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505")
}
