package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dovvia/internal/config"
)

func contactPayload() *Payload {
	return &Payload{
		FormType: FormContact,
		Contact: &ContactData{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "+2348012345678",
			Subject: "General Inquiry",
			Message: "Hello",
		},
	}
}

func TestEmailSendFormNotification(t *testing.T) {
	var captured resendRequest
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "email_abc123"}`))
	}))
	defer server.Close()

	svc := NewEmailService(&config.EmailConfig{
		APIKey:     "re_test_key",
		BaseURL:    server.URL,
		FromEmail:  "Dovvia Still <notifications@dovvia.com>",
		AdminEmail: "admin@dovvia.com",
	})

	messageID, err := svc.SendFormNotification(contactPayload())
	require.NoError(t, err)
	assert.Equal(t, "email_abc123", messageID)

	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "Dovvia Still <notifications@dovvia.com>", captured.From)
	assert.Equal(t, []string{"admin@dovvia.com"}, captured.To)
	assert.Equal(t, "New Contact Form Submission - Dovvia Still", captured.Subject)
	assert.Contains(t, captured.HTML, "Ada Obi")
}

func TestEmailSendFailsOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "invalid from address"}`))
	}))
	defer server.Close()

	svc := NewEmailService(&config.EmailConfig{
		APIKey:     "re_test_key",
		BaseURL:    server.URL,
		FromEmail:  "broken",
		AdminEmail: "admin@dovvia.com",
	})

	_, err := svc.SendFormNotification(contactPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestEmailSendFailsWhenUnconfigured(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{})
	assert.False(t, svc.IsConfigured())

	_, err := svc.SendFormNotification(contactPayload())
	require.Error(t, err)
}
