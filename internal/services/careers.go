package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"dovvia/internal/domain"
	"dovvia/internal/metrics"
	apperrors "dovvia/pkg/errors"
)

// CareersService handles job applications. Applications are persisted
// locally and relayed to the configured recruiting webhook; without a
// webhook URL the service refuses applications up front.
type CareersService struct {
	db      *gorm.DB
	webhook WebhookRelay
}

// NewCareersService creates a new careers service
func NewCareersService(db *gorm.DB, webhook WebhookRelay) *CareersService {
	return &CareersService{db: db, webhook: webhook}
}

// JobApplicationPayload is the careers form input.
type JobApplicationPayload struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Age         string  `json:"age"`
	Religion    string  `json:"religion"`
	Position    string  `json:"position"`
	ResumeURL   string  `json:"resume_url"`
	CoverLetter string  `json:"cover_letter"`
	LinkedIn    *string `json:"linkedin"`
	Experience  string  `json:"experience"`
}

// JobApplicationResult is returned to the applicant.
type JobApplicationResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// webhookApplication is the record relayed to the recruiting endpoint.
type webhookApplication struct {
	JobApplicationPayload
	AppliedDate string `json:"applied_date"`
	Source      string `json:"source"`
}

// Apply validates and stores a job application, then relays it to the
// recruiting webhook. When no webhook URL is configured the request
// fails before anything is stored or sent.
func (s *CareersService) Apply(ctx context.Context, p *JobApplicationPayload) (*JobApplicationResult, error) {
	log.Printf("[CAREERS] Apply request: name=%s %s, position=%s", strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName), strings.TrimSpace(p.Position))

	if !s.webhook.IsConfigured() {
		log.Printf("[CAREERS] Apply rejected: webhook URL not configured")
		return nil, apperrors.New(apperrors.ErrCodeNotConfigured,
			"job applications cannot be accepted right now, please try again later or contact us directly")
	}

	if err := s.validate(p); err != nil {
		log.Printf("[CAREERS] Apply failed: validation error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, err.Error(), nil)
	}

	application := &domain.JobApplication{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:       strings.TrimSpace(p.Phone),
		Age:         strings.TrimSpace(p.Age),
		Religion:    strings.TrimSpace(p.Religion),
		Position:    strings.TrimSpace(p.Position),
		ResumeURL:   strings.TrimSpace(p.ResumeURL),
		CoverLetter: strings.TrimSpace(p.CoverLetter),
		LinkedIn:    trimOptional(p.LinkedIn),
		Experience:  strings.TrimSpace(p.Experience),
	}

	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		log.Printf("[CAREERS] Apply failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save job application: %w", err)
	}

	log.Printf("[CAREERS] Apply successful: id=%d, position=%s", application.ID, application.Position)
	metrics.RecordFormSubmission("careers")

	// Relay failure never rolls back or hides the stored application.
	relay := webhookApplication{
		JobApplicationPayload: *p,
		AppliedDate:           time.Now().UTC().Format(time.RFC3339),
		Source:                "Company Website",
	}
	if err := s.webhook.Deliver(relay); err != nil {
		log.Printf("[CAREERS] Warning: webhook delivery failed for id=%d: %v", application.ID, err)
		metrics.RecordNotification("webhook", "failed")
	} else {
		metrics.RecordNotification("webhook", "sent")
	}

	return &JobApplicationResult{
		ID:      int(application.ID),
		Message: "Application submitted successfully. We will review it and get back to you soon.",
	}, nil
}

// List returns stored job applications, newest first.
func (s *CareersService) List(ctx context.Context, skip, limit int) ([]domain.JobApplication, error) {
	log.Printf("[CAREERS] List request: skip=%d, limit=%d", skip, limit)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var applications []domain.JobApplication
	if err := s.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit).Find(&applications).Error; err != nil {
		log.Printf("[CAREERS] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch job applications: %w", err)
	}

	log.Printf("[CAREERS] List successful: returned %d applications", len(applications))
	return applications, nil
}

func (s *CareersService) validate(p *JobApplicationPayload) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("first and last name are required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(p.Email)) {
		return fmt.Errorf("invalid email address")
	}
	if err := validatePhone(p.Phone); err != nil {
		return err
	}
	if strings.TrimSpace(p.Age) == "" {
		return fmt.Errorf("age is required")
	}
	if strings.TrimSpace(p.Religion) == "" {
		return fmt.Errorf("religion is required")
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("position is required")
	}
	if strings.TrimSpace(p.ResumeURL) == "" {
		return fmt.Errorf("resume link is required")
	}
	if strings.TrimSpace(p.CoverLetter) == "" {
		return fmt.Errorf("cover letter is required")
	}
	if strings.TrimSpace(p.Experience) == "" {
		return fmt.Errorf("experience is required")
	}
	return nil
}
