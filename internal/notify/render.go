package notify

import (
	"fmt"
	"strings"
	"time"
)

// Notifications render timestamps in the company's home timezone.
var lagosTime = mustLoadLocation("Africa/Lagos")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// WAT is a fixed +01:00 offset with no DST
		return time.FixedZone("WAT", 1*60*60)
	}
	return loc
}

const (
	emailTimestampLayout    = "Monday, January 2, 2006 at 3:04:05 PM MST"
	whatsappTimestampLayout = "Jan 2, 2006, 3:04 PM"
)

// EmailSubject returns the admin email subject line for a form type.
func EmailSubject(formType FormType) string {
	switch formType {
	case FormContact:
		return "New Contact Form Submission - Dovvia Still"
	case FormDistributor:
		return "New Distributor Inquiry - Dovvia Still"
	case FormNewsletter:
		return "New Newsletter Subscription - Dovvia Still"
	default:
		return "New Form Submission - Dovvia Still"
	}
}

// FormatEmailHTML renders the admin notification email body for a
// payload. Unknown form types render an empty body.
func FormatEmailHTML(p *Payload, now time.Time) string {
	timestamp := now.In(lagosTime).Format(emailTimestampLayout)

	switch {
	case p.Contact != nil:
		d := p.Contact
		fields := emailField("Name:", d.Name) +
			emailField("Email:", fmt.Sprintf(`<a href="mailto:%s">%s</a>`, d.Email, d.Email)) +
			emailField("Phone:", fmt.Sprintf(`<a href="tel:%s">%s</a>`, d.Phone, d.Phone)) +
			emailField("Subject:", d.Subject) +
			emailField("Message:", d.Message)
		return emailShell("New Contact Form Submission", fields, "Submitted on: "+timestamp)

	case p.Distributor != nil:
		d := p.Distributor
		fields := emailField("Business Name:", d.BusinessName) +
			emailField("Contact Person:", d.ContactName) +
			emailField("Email:", fmt.Sprintf(`<a href="mailto:%s">%s</a>`, d.Email, d.Email)) +
			emailField("Phone:", fmt.Sprintf(`<a href="tel:%s">%s</a>`, d.Phone, d.Phone))
		if d.WhatsApp != "" {
			waDigits := strings.ReplaceAll(d.WhatsApp, "+", "")
			fields += emailField("WhatsApp:", fmt.Sprintf(`<a href="https://wa.me/%s">%s</a>`, waDigits, d.WhatsApp))
		}
		fields += emailField("Location:", d.Location) +
			emailField("Business Type:", d.BusinessType)
		if d.ExpectedVolume != "" {
			fields += emailField("Expected Volume:", d.ExpectedVolume)
		}
		if d.Message != "" {
			fields += emailField("Additional Information:", d.Message)
		}
		return emailShell("New Distributor Inquiry", fields, "Submitted on: "+timestamp)

	case p.Newsletter != nil:
		d := p.Newsletter
		fields := emailField("Email:", fmt.Sprintf(`<a href="mailto:%s">%s</a>`, d.Email, d.Email))
		return emailShell("New Newsletter Subscription", fields, "Subscribed on: "+timestamp)
	}

	return ""
}

func emailField(label, value string) string {
	return fmt.Sprintf(`
      <div class="field">
        <div class="label">%s</div>
        <div class="value">%s</div>
      </div>`, label, value)
}

func emailShell(heading, fields, footer string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #16a34a; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #16a34a; }
    .value { margin-top: 5px; }
    .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #e5e7eb; font-size: 12px; color: #6b7280; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2 style="margin: 0;">%s</h2>
    </div>
    <div class="content">%s
      <div class="footer">
        %s
      </div>
    </div>
  </div>
</body>
</html>`, heading, fields, footer)
}

// FormatWhatsAppText renders the admin WhatsApp message for a payload.
// Unknown form types render an empty body.
func FormatWhatsAppText(p *Payload, now time.Time) string {
	timestamp := now.In(lagosTime).Format(whatsappTimestampLayout)

	switch {
	case p.Contact != nil:
		d := p.Contact
		return fmt.Sprintf(`🔔 *NEW CONTACT FORM SUBMISSION*

📝 *Name:* %s
📧 *Email:* %s
📱 *Phone:* %s
📌 *Subject:* %s

💬 *Message:*
%s

⏰ _Submitted: %s_`, d.Name, d.Email, d.Phone, d.Subject, d.Message, timestamp)

	case p.Distributor != nil:
		d := p.Distributor
		var b strings.Builder
		fmt.Fprintf(&b, `🔔 *NEW DISTRIBUTOR INQUIRY*

🏢 *Business:* %s
👤 *Contact Person:* %s
📧 *Email:* %s
📱 *Phone:* %s`, d.BusinessName, d.ContactName, d.Email, d.Phone)
		if d.WhatsApp != "" {
			fmt.Fprintf(&b, "\n💬 *WhatsApp:* %s", d.WhatsApp)
		}
		fmt.Fprintf(&b, "\n📍 *Location:* %s\n🏪 *Business Type:* %s", d.Location, d.BusinessType)
		if d.ExpectedVolume != "" {
			fmt.Fprintf(&b, "\n📦 *Expected Volume:* %s", d.ExpectedVolume)
		}
		if d.Message != "" {
			fmt.Fprintf(&b, "\n\n📝 *Additional Info:*\n%s", d.Message)
		}
		fmt.Fprintf(&b, "\n\n⏰ _Submitted: %s_", timestamp)
		return b.String()

	case p.Newsletter != nil:
		d := p.Newsletter
		return fmt.Sprintf(`🔔 *NEW NEWSLETTER SUBSCRIPTION*

📧 *Email:* %s

⏰ _Subscribed: %s_`, d.Email, timestamp)
	}

	return ""
}
