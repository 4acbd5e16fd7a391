package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadContact(t *testing.T) {
	data := json.RawMessage(`{
		"name": "Ada Obi",
		"email": "ada@example.com",
		"phone": "+2348012345678",
		"subject": "Feedback",
		"message": "Great water."
	}`)

	p, err := ParsePayload("contact", data)
	require.NoError(t, err)
	require.NotNil(t, p.Contact)
	assert.Equal(t, FormContact, p.FormType)
	assert.Equal(t, "Ada Obi", p.Contact.Name)
	assert.Nil(t, p.Distributor)
	assert.Nil(t, p.Newsletter)
}

func TestParsePayloadMissingFields(t *testing.T) {
	data := json.RawMessage(`{"name": "Ada Obi", "phone": "  "}`)

	_, err := ParsePayload("contact", data)
	require.Error(t, err)
	// Missing fields are listed alphabetically
	assert.EqualError(t, err, "missing required fields: email, message, phone, subject")
}

func TestParsePayloadDistributorOptionalFields(t *testing.T) {
	data := json.RawMessage(`{
		"business_name": "Eze Stores",
		"contact_name": "Emeka Eze",
		"email": "emeka@ezestores.ng",
		"phone": "+2348031234567",
		"location": "Enugu",
		"business_type": "Retail"
	}`)

	p, err := ParsePayload("distributor", data)
	require.NoError(t, err)
	require.NotNil(t, p.Distributor)
	assert.Empty(t, p.Distributor.WhatsApp)
	assert.Empty(t, p.Distributor.ExpectedVolume)
}

func TestParsePayloadNewsletter(t *testing.T) {
	p, err := ParsePayload("newsletter", json.RawMessage(`{"email": "reader@example.com"}`))
	require.NoError(t, err)
	require.NotNil(t, p.Newsletter)
	assert.Equal(t, "reader@example.com", p.Newsletter.Email)

	_, err = ParsePayload("newsletter", json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestParsePayloadUnknownFormType(t *testing.T) {
	p, err := ParsePayload("mystery", json.RawMessage(`{"anything": true}`))
	require.NoError(t, err)
	assert.Nil(t, p.Contact)
	assert.Nil(t, p.Distributor)
	assert.Nil(t, p.Newsletter)
}

func TestParsePayloadMalformedData(t *testing.T) {
	_, err := ParsePayload("contact", json.RawMessage(`not json`))
	require.Error(t, err)
}
