package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"dovvia/internal/domain"
	"dovvia/internal/metrics"
	apperrors "dovvia/pkg/errors"
)

// DistributorService handles distributor partnership inquiries.
type DistributorService struct {
	db *gorm.DB
}

// NewDistributorService creates a new distributor service
func NewDistributorService(db *gorm.DB) *DistributorService {
	return &DistributorService{db: db}
}

// DistributorSubmitPayload is the partner form input. WhatsApp,
// expected volume and message are optional and pass through empty.
type DistributorSubmitPayload struct {
	BusinessName   string  `json:"business_name"`
	ContactName    string  `json:"contact_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	WhatsApp       *string `json:"whatsapp"`
	Location       string  `json:"location"`
	BusinessType   string  `json:"business_type"`
	ExpectedVolume *string `json:"expected_volume"`
	Message        *string `json:"message"`
}

// DistributorSubmitResult is returned to the submitting visitor.
type DistributorSubmitResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Submit validates and stores a distributor inquiry.
func (s *DistributorService) Submit(ctx context.Context, p *DistributorSubmitPayload) (*DistributorSubmitResult, error) {
	log.Printf("[DISTRIBUTOR] Submit request: business=%s, email=%s", strings.TrimSpace(p.BusinessName), strings.TrimSpace(p.Email))

	if err := s.validate(p); err != nil {
		log.Printf("[DISTRIBUTOR] Submit failed: validation error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, err.Error(), nil)
	}

	inquiry := &domain.DistributorInquiry{
		BusinessName: strings.TrimSpace(p.BusinessName),
		ContactName:  strings.TrimSpace(p.ContactName),
		Email:        strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:        strings.TrimSpace(p.Phone),
		Location:     strings.TrimSpace(p.Location),
		BusinessType: strings.TrimSpace(p.BusinessType),
	}
	inquiry.WhatsApp = trimOptional(p.WhatsApp)
	inquiry.ExpectedVolume = trimOptional(p.ExpectedVolume)
	inquiry.Message = trimOptional(p.Message)

	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		log.Printf("[DISTRIBUTOR] Submit failed: database error: %v", err)
		return nil, fmt.Errorf("failed to save distributor inquiry: %w", err)
	}

	log.Printf("[DISTRIBUTOR] Submit successful: id=%d, business=%s", inquiry.ID, inquiry.BusinessName)
	metrics.RecordFormSubmission("distributor")

	return &DistributorSubmitResult{
		ID:      int(inquiry.ID),
		Message: "Thank you for your interest. Our team will contact you within 48 hours.",
	}, nil
}

// List returns stored distributor inquiries, newest first.
func (s *DistributorService) List(ctx context.Context, skip, limit int) ([]domain.DistributorInquiry, error) {
	log.Printf("[DISTRIBUTOR] List request: skip=%d, limit=%d", skip, limit)

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var inquiries []domain.DistributorInquiry
	if err := s.db.WithContext(ctx).Order("created_at DESC").Offset(skip).Limit(limit).Find(&inquiries).Error; err != nil {
		log.Printf("[DISTRIBUTOR] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch distributor inquiries: %w", err)
	}

	log.Printf("[DISTRIBUTOR] List successful: returned %d inquiries", len(inquiries))
	return inquiries, nil
}

func (s *DistributorService) validate(p *DistributorSubmitPayload) error {
	if strings.TrimSpace(p.BusinessName) == "" {
		return fmt.Errorf("business name is required")
	}
	if strings.TrimSpace(p.ContactName) == "" {
		return fmt.Errorf("contact name is required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(p.Email)) {
		return fmt.Errorf("invalid email address")
	}
	if err := validatePhone(p.Phone); err != nil {
		return err
	}
	if err := validateOptionalPhone(p.WhatsApp); err != nil {
		return fmt.Errorf("invalid whatsapp number format")
	}
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if strings.TrimSpace(p.BusinessType) == "" {
		return fmt.Errorf("business type is required")
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
