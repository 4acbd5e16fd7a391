package services

import (
	"dovvia/internal/notify"
)

// EmailNotifier dispatches a form notification to the admin inbox.
type EmailNotifier interface {
	SendFormNotification(p *notify.Payload) (messageID string, err error)
	IsConfigured() bool
}

// WhatsAppNotifier dispatches a form notification to the admin
// WhatsApp number. sent is false when the channel is not configured.
type WhatsAppNotifier interface {
	SendFormNotification(p *notify.Payload) (sent bool, err error)
	IsConfigured() bool
}

// WebhookRelay delivers job applications to the external recruiting
// endpoint.
type WebhookRelay interface {
	Deliver(payload any) error
	IsConfigured() bool
}
