package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var renderTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func TestEmailSubject(t *testing.T) {
	assert.Equal(t, "New Contact Form Submission - Dovvia Still", EmailSubject(FormContact))
	assert.Equal(t, "New Distributor Inquiry - Dovvia Still", EmailSubject(FormDistributor))
	assert.Equal(t, "New Newsletter Subscription - Dovvia Still", EmailSubject(FormNewsletter))
	assert.Equal(t, "New Form Submission - Dovvia Still", EmailSubject(FormType("mystery")))
}

func TestFormatEmailHTMLContact(t *testing.T) {
	p := &Payload{
		FormType: FormContact,
		Contact: &ContactData{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "+2348012345678",
			Subject: "General Inquiry",
			Message: "Do you deliver to Gwagwalada?",
		},
	}

	html := FormatEmailHTML(p, renderTime)
	assert.Contains(t, html, "New Contact Form Submission")
	assert.Contains(t, html, "Ada Obi")
	assert.Contains(t, html, `mailto:ada@example.com`)
	assert.Contains(t, html, `tel:+2348012345678`)
	assert.Contains(t, html, "Do you deliver to Gwagwalada?")
	assert.Contains(t, html, "#16a34a")
	// Timestamps render in the company's home timezone (WAT, UTC+1)
	assert.Contains(t, html, "Submitted on: Saturday, March 14, 2026 at 10:30:00 AM WAT")
}

func TestFormatEmailHTMLDistributorOptionalFields(t *testing.T) {
	p := &Payload{
		FormType: FormDistributor,
		Distributor: &DistributorData{
			BusinessName: "Eze Stores",
			ContactName:  "Emeka Eze",
			Email:        "emeka@ezestores.ng",
			Phone:        "+2348031234567",
			Location:     "Enugu",
			BusinessType: "Retail",
		},
	}

	html := FormatEmailHTML(p, renderTime)
	assert.Contains(t, html, "New Distributor Inquiry")
	assert.NotContains(t, html, "WhatsApp:")
	assert.NotContains(t, html, "Expected Volume:")

	p.Distributor.WhatsApp = "+2348031234567"
	p.Distributor.ExpectedVolume = "500 cartons/month"
	html = FormatEmailHTML(p, renderTime)
	assert.Contains(t, html, `https://wa.me/2348031234567`)
	assert.Contains(t, html, "500 cartons/month")
}

func TestFormatEmailHTMLNewsletter(t *testing.T) {
	p := &Payload{
		FormType:   FormNewsletter,
		Newsletter: &NewsletterData{Email: "reader@example.com"},
	}

	html := FormatEmailHTML(p, renderTime)
	assert.Contains(t, html, "New Newsletter Subscription")
	assert.Contains(t, html, "reader@example.com")
	assert.Contains(t, html, "Subscribed on:")
}

func TestFormatEmailHTMLUnknownFormIsEmpty(t *testing.T) {
	p := &Payload{FormType: FormType("mystery")}
	assert.Empty(t, FormatEmailHTML(p, renderTime))
	assert.Empty(t, FormatWhatsAppText(p, renderTime))
}

func TestFormatWhatsAppTextContact(t *testing.T) {
	p := &Payload{
		FormType: FormContact,
		Contact: &ContactData{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "+2348012345678",
			Subject: "Support",
			Message: "My order is late.",
		},
	}

	text := FormatWhatsAppText(p, renderTime)
	assert.Contains(t, text, "🔔 *NEW CONTACT FORM SUBMISSION*")
	assert.Contains(t, text, "*Name:* Ada Obi")
	assert.Contains(t, text, "*Subject:* Support")
	assert.Contains(t, text, "My order is late.")
	assert.Contains(t, text, "_Submitted: Mar 14, 2026, 10:30 AM_")
}

func TestFormatWhatsAppTextDistributorOptionalFields(t *testing.T) {
	p := &Payload{
		FormType: FormDistributor,
		Distributor: &DistributorData{
			BusinessName: "Eze Stores",
			ContactName:  "Emeka Eze",
			Email:        "emeka@ezestores.ng",
			Phone:        "+2348031234567",
			Location:     "Enugu",
			BusinessType: "Retail",
			Message:      "We cover three markets.",
		},
	}

	text := FormatWhatsAppText(p, renderTime)
	assert.Contains(t, text, "🔔 *NEW DISTRIBUTOR INQUIRY*")
	assert.NotContains(t, text, "*WhatsApp:*")
	assert.Contains(t, text, "*Additional Info:*\nWe cover three markets.")
}
