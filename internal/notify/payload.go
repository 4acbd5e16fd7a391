package notify

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormType identifies which form a notification describes.
type FormType string

const (
	FormContact     FormType = "contact"
	FormDistributor FormType = "distributor"
	FormNewsletter  FormType = "newsletter"
)

// ContactData is the contact form record carried in a notification.
type ContactData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// DistributorData is the distributor inquiry record carried in a notification.
type DistributorData struct {
	BusinessName   string `json:"business_name"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	WhatsApp       string `json:"whatsapp,omitempty"`
	Location       string `json:"location"`
	BusinessType   string `json:"business_type"`
	ExpectedVolume string `json:"expected_volume,omitempty"`
	Message        string `json:"message,omitempty"`
}

// NewsletterData is the newsletter subscription record carried in a notification.
type NewsletterData struct {
	Email string `json:"email"`
}

// Payload is a tagged union of the per-form notification records.
// Exactly one of the data fields is set for a known FormType; an
// unknown FormType leaves all of them nil and renders empty bodies.
type Payload struct {
	FormType    FormType
	Contact     *ContactData
	Distributor *DistributorData
	Newsletter  *NewsletterData
}

// ParsePayload decodes the raw `data` object of a notification request
// into the typed record selected by formType, validating required
// fields at the boundary. An unrecognized formType yields a payload
// with no record attached, never an error.
func ParsePayload(formType string, data json.RawMessage) (*Payload, error) {
	p := &Payload{FormType: FormType(formType)}

	switch p.FormType {
	case FormContact:
		var d ContactData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("invalid contact data: %w", err)
		}
		if err := requireFields(map[string]string{
			"name":    d.Name,
			"email":   d.Email,
			"phone":   d.Phone,
			"subject": d.Subject,
			"message": d.Message,
		}); err != nil {
			return nil, err
		}
		p.Contact = &d
	case FormDistributor:
		var d DistributorData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("invalid distributor data: %w", err)
		}
		if err := requireFields(map[string]string{
			"business_name": d.BusinessName,
			"contact_name":  d.ContactName,
			"email":         d.Email,
			"phone":         d.Phone,
			"location":      d.Location,
			"business_type": d.BusinessType,
		}); err != nil {
			return nil, err
		}
		p.Distributor = &d
	case FormNewsletter:
		var d NewsletterData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("invalid newsletter data: %w", err)
		}
		if err := requireFields(map[string]string{"email": d.Email}); err != nil {
			return nil, err
		}
		p.Newsletter = &d
	}

	return p, nil
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
