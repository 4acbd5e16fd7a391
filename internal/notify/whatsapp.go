package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"dovvia/internal/config"
)

// WhatsAppService relays form notifications to the admin WhatsApp
// number through the WhatsApp Business API. The service is optional:
// without credentials it reports "not configured" instead of failing,
// and makes no outbound calls.
type WhatsAppService struct {
	cfg    *config.WhatsAppConfig
	client *resty.Client
}

// NewWhatsAppService creates a new WhatsApp service
func NewWhatsAppService(cfg *config.WhatsAppConfig) *WhatsAppService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(clientTimeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIToken)

	return &WhatsAppService{cfg: cfg, client: client}
}

type whatsappMessageRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             whatsappTextBody `json:"text"`
}

type whatsappTextBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// IsConfigured reports whether the API token and phone number id are set.
func (s *WhatsAppService) IsConfigured() bool {
	return s.cfg.IsConfigured()
}

// SendFormNotification renders and sends the admin WhatsApp message
// for a form payload. The returned bool reports whether a message was
// sent; (false, nil) means the service is not configured.
func (s *WhatsAppService) SendFormNotification(p *Payload) (bool, error) {
	return s.Send(s.cfg.AdminNumber, FormatWhatsAppText(p, time.Now()))
}

// Send delivers a text message to the given number.
func (s *WhatsAppService) Send(to, message string) (bool, error) {
	if !s.IsConfigured() {
		log.Println("[WHATSAPP] API not configured, skipping WhatsApp notification")
		return false, nil
	}

	body := whatsappMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text: whatsappTextBody{
			PreviewURL: false,
			Body:       message,
		},
	}

	resp, err := s.client.R().
		SetBody(body).
		Post(fmt.Sprintf("/%s/messages", s.cfg.PhoneID))
	if err != nil {
		return false, fmt.Errorf("failed to send WhatsApp request: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("WhatsApp API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	return true, nil
}
