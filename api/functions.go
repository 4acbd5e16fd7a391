package api

import (
	"encoding/json"
	"log"
	"net/http"

	"dovvia/internal/metrics"
	"dovvia/internal/notify"
)

// FunctionsHandler serves the standalone notification dispatch
// endpoints under /functions/v1/. They keep their own permissive CORS
// headers and response envelopes so existing callers keep working.
type FunctionsHandler struct {
	email    *notify.EmailService
	whatsapp *notify.WhatsAppService
}

// NewFunctionsHandler creates a new functions handler
func NewFunctionsHandler(email *notify.EmailService, whatsapp *notify.WhatsAppService) *FunctionsHandler {
	return &FunctionsHandler{email: email, whatsapp: whatsapp}
}

type notificationRequest struct {
	FormType string          `json:"formType"`
	Data     json.RawMessage `json:"data"`
}

func functionsCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
}

func writeFunctionsJSON(w http.ResponseWriter, body any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

// SendEmail handles POST /functions/v1/send-email-notification.
func (h *FunctionsHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	functionsCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFunctionsJSON(w, map[string]any{"success": false, "error": "invalid request body"}, http.StatusBadRequest)
		return
	}

	payload, err := notify.ParsePayload(req.FormType, req.Data)
	if err != nil {
		writeFunctionsJSON(w, map[string]any{"success": false, "error": err.Error()}, http.StatusBadRequest)
		return
	}

	messageID, err := h.email.SendFormNotification(payload)
	if err != nil {
		log.Printf("[EMAIL] Failed to send %s notification: %v", req.FormType, err)
		metrics.RecordNotification("email", "failed")
		writeFunctionsJSON(w, map[string]any{"success": false, "error": err.Error()}, http.StatusInternalServerError)
		return
	}

	metrics.RecordNotification("email", "sent")
	writeFunctionsJSON(w, map[string]any{"success": true, "messageId": messageID}, http.StatusOK)
}

// SendWhatsApp handles POST /functions/v1/send-whatsapp-notification.
// An unconfigured WhatsApp API is reported as success:false with a 200,
// matching how callers already treat the skip case.
func (h *FunctionsHandler) SendWhatsApp(w http.ResponseWriter, r *http.Request) {
	functionsCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFunctionsJSON(w, map[string]any{"success": false, "error": "invalid request body"}, http.StatusBadRequest)
		return
	}

	payload, err := notify.ParsePayload(req.FormType, req.Data)
	if err != nil {
		writeFunctionsJSON(w, map[string]any{"success": false, "error": err.Error()}, http.StatusBadRequest)
		return
	}

	sent, err := h.whatsapp.SendFormNotification(payload)
	if err != nil {
		log.Printf("[WHATSAPP] Failed to send %s notification: %v", req.FormType, err)
		metrics.RecordNotification("whatsapp", "failed")
		writeFunctionsJSON(w, map[string]any{"success": false, "error": err.Error()}, http.StatusInternalServerError)
		return
	}

	message := "WhatsApp notification sent"
	if !sent {
		message = "WhatsApp API not configured"
		metrics.RecordNotification("whatsapp", "skipped")
	} else {
		metrics.RecordNotification("whatsapp", "sent")
	}
	writeFunctionsJSON(w, map[string]any{"success": sent, "message": message}, http.StatusOK)
}
