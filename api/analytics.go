package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dovvia/internal/services"
)

// AnalyticsHandler records page views. Tracking must never break the
// page that sent it, so failures respond 500 with a terse error and
// the details stay in the server log.
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// RecordPageView handles POST /api/analytics
func (h *AnalyticsHandler) RecordPageView(w http.ResponseWriter, r *http.Request) {
	var payload services.PageViewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, map[string]string{"error": "invalid request body"}, http.StatusBadRequest)
		return
	}

	meta := requestMeta(r)
	if err := h.analytics.Record(r.Context(), &payload, meta); err != nil {
		log.Printf("[ANALYTICS] Failed to record page view: %v", err)
		writeJSON(w, map[string]string{"error": "failed to record page view"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// requestMeta extracts the caller's address and edge geolocation
// headers. X-Forwarded-For may hold a chain; only the first hop is the
// client.
func requestMeta(r *http.Request) *services.RequestMeta {
	return &services.RequestMeta{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
		Country:   r.Header.Get("X-Vercel-IP-Country"),
		City:      r.Header.Get("X-Vercel-IP-City"),
		Region:    r.Header.Get("X-Vercel-IP-Country-Region"),
		Latitude:  r.Header.Get("X-Vercel-IP-Latitude"),
		Longitude: r.Header.Get("X-Vercel-IP-Longitude"),
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}
