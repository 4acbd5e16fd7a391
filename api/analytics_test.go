package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dovvia/internal/domain"
)

func TestAnalyticsEndpointRecordsPageView(t *testing.T) {
	router, db := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{
		"pagePath": "/products",
		"pageTitle": "Products",
		"sessionId": "sess-1",
		"screenWidth": 390,
		"screenHeight": 844,
		"language": "en-NG",
		"timezone": "Africa/Lagos"
	}`))
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 Version/16.6 Mobile/15E148 Safari/604.1")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("X-Vercel-IP-Country", "NG")
	req.Header.Set("X-Vercel-IP-City", "Abuja")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["success"])

	var view domain.PageView
	require.NoError(t, db.First(&view).Error)
	// Only the first X-Forwarded-For hop is the client
	assert.Equal(t, "203.0.113.7", view.IPAddress)
	assert.Equal(t, "tablet", view.DeviceType)
	assert.Equal(t, "NG", view.Country)
	assert.Equal(t, "Abuja", view.City)
}

func TestAnalyticsEndpointFallsBackToRealIP(t *testing.T) {
	router, db := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{
		"pagePath": "/",
		"sessionId": "sess-2"
	}`))
	req.Header.Set("X-Real-IP", "198.51.100.4")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.PageView
	require.NoError(t, db.First(&view).Error)
	assert.Equal(t, "198.51.100.4", view.IPAddress)
}

func TestAnalyticsEndpointUnknownIP(t *testing.T) {
	router, db := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{
		"pagePath": "/",
		"sessionId": "sess-3"
	}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.PageView
	require.NoError(t, db.First(&view).Error)
	assert.Equal(t, "unknown", view.IPAddress)
}

func TestAnalyticsEndpointRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
