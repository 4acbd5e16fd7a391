package notify

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"dovvia/internal/config"
)

// WebhookService delivers job applications to the configured external
// recruiting endpoint.
type WebhookService struct {
	cfg    *config.CareersConfig
	client *resty.Client
}

// NewWebhookService creates a new careers webhook service
func NewWebhookService(cfg *config.CareersConfig) *WebhookService {
	client := resty.New().
		SetTimeout(clientTimeout).
		SetHeader("Content-Type", "application/json")

	return &WebhookService{cfg: cfg, client: client}
}

// IsConfigured reports whether a webhook URL is set.
func (s *WebhookService) IsConfigured() bool {
	return s.cfg.WebhookURL != ""
}

// Deliver posts the payload to the webhook URL. Callers must check
// IsConfigured first; delivering without a URL is an error.
func (s *WebhookService) Deliver(payload any) error {
	if !s.IsConfigured() {
		return fmt.Errorf("careers webhook not configured")
	}

	resp, err := s.client.R().
		SetBody(payload).
		Post(s.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("failed to deliver application: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook error (status %d): %s", resp.StatusCode(), resp.String())
	}

	return nil
}
