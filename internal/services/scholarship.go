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

// ScholarshipService handles scholarship program applications.
type ScholarshipService struct {
	db *gorm.DB
}

// NewScholarshipService creates a new scholarship service
func NewScholarshipService(db *gorm.DB) *ScholarshipService {
	return &ScholarshipService{db: db}
}

// ScholarshipApplyPayload is the scholarship form input.
type ScholarshipApplyPayload struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	School      string  `json:"school"`
	Year        string  `json:"year"`
	GradeLevel  string  `json:"grade_level"`
	GPA         *string `json:"gpa"`
	Essay       string  `json:"essay"`
	ImageURL    *string `json:"image_url"`
	DocumentURL string  `json:"document_url"`
}

// ScholarshipApplyResult is returned to the applicant.
type ScholarshipApplyResult struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Apply validates and stores a scholarship application. New
// applications always enter the processing state regardless of input.
func (s *ScholarshipService) Apply(ctx context.Context, p *ScholarshipApplyPayload) (*ScholarshipApplyResult, error) {
	log.Printf("[SCHOLARSHIP] Apply request: name=%s, school=%s", strings.TrimSpace(p.FullName), strings.TrimSpace(p.School))

	if err := s.validate(p); err != nil {
		log.Printf("[SCHOLARSHIP] Apply failed: validation error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, err.Error(), nil)
	}

	application := &domain.ScholarshipApplication{
		FullName:    strings.TrimSpace(p.FullName),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:       strings.TrimSpace(p.Phone),
		School:      strings.TrimSpace(p.School),
		Year:        strings.TrimSpace(p.Year),
		GradeLevel:  strings.TrimSpace(p.GradeLevel),
		GPA:         trimOptional(p.GPA),
		Essay:       strings.TrimSpace(p.Essay),
		ImageURL:    trimOptional(p.ImageURL),
		DocumentURL: strings.TrimSpace(p.DocumentURL),
		Status:      domain.ScholarshipStatusProcessing,
	}

	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		log.Printf("[SCHOLARSHIP] Apply failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save scholarship application: %w", err)
	}

	log.Printf("[SCHOLARSHIP] Apply successful: id=%d, name=%s", application.ID, application.FullName)
	metrics.RecordFormSubmission("scholarship")

	return &ScholarshipApplyResult{
		ID:      int(application.ID),
		Status:  application.Status,
		Message: "Application submitted successfully. We will review it and get back to you soon.",
	}, nil
}

// List returns stored scholarship applications, newest first.
func (s *ScholarshipService) List(ctx context.Context, skip, limit int) ([]domain.ScholarshipApplication, error) {
	log.Printf("[SCHOLARSHIP] List request: skip=%d, limit=%d", skip, limit)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var applications []domain.ScholarshipApplication
	if err := s.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit).Find(&applications).Error; err != nil {
		log.Printf("[SCHOLARSHIP] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch scholarship applications: %w", err)
	}

	log.Printf("[SCHOLARSHIP] List successful: returned %d applications", len(applications))
	return applications, nil
}

// UpdateStatus moves an application to a new review state. This is the
// external driver of the scholarship status lifecycle, exposed on the
// admin surface only.
func (s *ScholarshipService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.ScholarshipApplication, error) {
	log.Printf("[SCHOLARSHIP] UpdateStatus request: id=%d, status=%s", id, status)

	if !domain.IsValidScholarshipStatus(status) {
		return nil, apperrors.New(apperrors.ErrCodeValidation,
			fmt.Sprintf("invalid status %q", status))
	}

	var application domain.ScholarshipApplication
	if err := s.db.WithContext(ctx).First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "scholarship application not found")
		}
		return nil, fmt.Errorf("failed to fetch scholarship application: %w", err)
	}

	application.Status = status
	if err := s.db.WithContext(ctx).Save(&application).Error; err != nil {
		log.Printf("[SCHOLARSHIP] UpdateStatus failed: database error: %v", err)
		return nil, fmt.Errorf("failed to update scholarship application: %w", err)
	}

	log.Printf("[SCHOLARSHIP] UpdateStatus successful: id=%d, status=%s", id, status)
	return &application, nil
}

func (s *ScholarshipService) validate(p *ScholarshipApplyPayload) error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(p.Email)) {
		return fmt.Errorf("invalid email address")
	}
	if err := validatePhone(p.Phone); err != nil {
		return err
	}
	if strings.TrimSpace(p.School) == "" {
		return fmt.Errorf("school is required")
	}
	if strings.TrimSpace(p.Year) == "" {
		return fmt.Errorf("year is required")
	}
	if strings.TrimSpace(p.GradeLevel) == "" {
		return fmt.Errorf("grade level is required")
	}
	if strings.TrimSpace(p.Essay) == "" {
		return fmt.Errorf("essay is required")
	}
	if strings.TrimSpace(p.DocumentURL) == "" {
		return fmt.Errorf("document link is required")
	}
	return nil
}
