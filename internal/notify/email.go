package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"dovvia/internal/config"
)

const clientTimeout = 10 * time.Second

// EmailService relays form notifications to the admin inbox through
// the Resend transactional email API.
type EmailService struct {
	cfg    *config.EmailConfig
	client *resty.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(clientTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.APIKey)

	return &EmailService{cfg: cfg, client: client}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// IsConfigured reports whether the Resend API key is set.
func (s *EmailService) IsConfigured() bool {
	return s.cfg.APIKey != ""
}

// SendFormNotification renders and sends the admin email for a form
// payload. It returns the provider message id on success. Any
// non-success response from the email API is a hard failure.
func (s *EmailService) SendFormNotification(p *Payload) (string, error) {
	if !s.IsConfigured() {
		return "", fmt.Errorf("email service not configured")
	}

	body := resendRequest{
		From:    s.cfg.FromEmail,
		To:      []string{s.cfg.AdminEmail},
		Subject: EmailSubject(p.FormType),
		HTML:    FormatEmailHTML(p, time.Now()),
	}

	var result resendResponse
	resp, err := s.client.R().
		SetBody(body).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("failed to send email request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("email sending failed (status %d): %s", resp.StatusCode(), resp.String())
	}

	return result.ID, nil
}
