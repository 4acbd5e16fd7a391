package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"gorm.io/gorm"

	"dovvia/internal/domain"
	"dovvia/internal/metrics"
	"dovvia/internal/notify"
	apperrors "dovvia/pkg/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

// ContactService handles contact form submissions and their
// notification fan-out.
type ContactService struct {
	db       *gorm.DB
	email    EmailNotifier
	whatsapp WhatsAppNotifier

	notifyWG sync.WaitGroup
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, email EmailNotifier, whatsapp WhatsAppNotifier) *ContactService {
	return &ContactService{
		db:       db,
		email:    email,
		whatsapp: whatsapp,
	}
}

// ContactSubmitPayload is the contact form input.
type ContactSubmitPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSubmitResult is returned to the submitting visitor.
type ContactSubmitResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Submit validates and stores a contact submission, then fans out
// email and WhatsApp notifications. The fan-out is fire-and-forget:
// both dispatches run concurrently and neither outcome affects the
// stored row or the caller's success response.
func (s *ContactService) Submit(ctx context.Context, p *ContactSubmitPayload) (*ContactSubmitResult, error) {
	log.Printf("[CONTACT] Submit request: name=%s, email=%s", strings.TrimSpace(p.Name), strings.TrimSpace(p.Email))

	if err := s.validate(p); err != nil {
		log.Printf("[CONTACT] Submit failed: validation error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, err.Error(), nil)
	}

	submission := &domain.ContactSubmission{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:   strings.TrimSpace(p.Phone),
		Subject: strings.TrimSpace(p.Subject),
		Message: strings.TrimSpace(p.Message),
	}

	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		log.Printf("[CONTACT] Submit failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}

	log.Printf("[CONTACT] Submit successful: id=%d, name=%s, email=%s", submission.ID, submission.Name, submission.Email)
	metrics.RecordFormSubmission("contact")

	payload := &notify.Payload{
		FormType: notify.FormContact,
		Contact: &notify.ContactData{
			Name:    submission.Name,
			Email:   submission.Email,
			Phone:   submission.Phone,
			Subject: submission.Subject,
			Message: submission.Message,
		},
	}

	s.notifyWG.Add(2)
	go func() {
		defer s.notifyWG.Done()
		if _, err := s.email.SendFormNotification(payload); err != nil {
			log.Printf("[CONTACT] Warning: email notification failed for id=%d: %v", submission.ID, err)
			metrics.RecordNotification("email", "failed")
		} else {
			log.Printf("[CONTACT] Email notification sent for id=%d", submission.ID)
			metrics.RecordNotification("email", "sent")
		}
	}()
	go func() {
		defer s.notifyWG.Done()
		sent, err := s.whatsapp.SendFormNotification(payload)
		switch {
		case err != nil:
			log.Printf("[CONTACT] Warning: WhatsApp notification failed for id=%d: %v", submission.ID, err)
			metrics.RecordNotification("whatsapp", "failed")
		case !sent:
			metrics.RecordNotification("whatsapp", "skipped")
		default:
			log.Printf("[CONTACT] WhatsApp notification sent for id=%d", submission.ID)
			metrics.RecordNotification("whatsapp", "sent")
		}
	}()

	return &ContactSubmitResult{
		ID:      int(submission.ID),
		Message: "Thank you for contacting us. We will respond within 24 hours.",
	}, nil
}

// WaitForNotifications blocks until in-flight notification dispatches
// finish. Called during graceful shutdown and from tests.
func (s *ContactService) WaitForNotifications() {
	s.notifyWG.Wait()
}

// List returns stored contact submissions, newest first.
func (s *ContactService) List(ctx context.Context, skip, limit int) ([]domain.ContactSubmission, error) {
	log.Printf("[CONTACT] List request: skip=%d, limit=%d", skip, limit)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var submissions []domain.ContactSubmission
	if err := s.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit).Find(&submissions).Error; err != nil {
		log.Printf("[CONTACT] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}

	log.Printf("[CONTACT] List successful: returned %d submissions", len(submissions))
	return submissions, nil
}

// validate applies server-side validation mirroring the form's
// required attributes.
func (s *ContactService) validate(p *ContactSubmitPayload) error {
	name := strings.TrimSpace(p.Name)
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}

	if !emailRegex.MatchString(strings.TrimSpace(p.Email)) {
		return fmt.Errorf("invalid email address")
	}

	if err := validatePhone(p.Phone); err != nil {
		return err
	}

	if !domain.IsValidSubject(strings.TrimSpace(p.Subject)) {
		return fmt.Errorf("invalid subject")
	}

	message := strings.TrimSpace(p.Message)
	if len(message) < 1 {
		return fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return fmt.Errorf("message must not exceed 5000 characters")
	}

	return nil
}

func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) || len(phone) < 10 || len(phone) > 20 {
		return fmt.Errorf("invalid phone number format")
	}
	return nil
}

func validateOptionalPhone(phone *string) error {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return nil
	}
	return validatePhone(*phone)
}
