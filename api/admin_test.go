package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dovvia/internal/domain"
)

func loginAdmin(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := postJSON(t, router, "/api/v1/auth/login", `{"username": "admin", "password": "secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["access_token"])
	return body["access_token"]
}

func getWithToken(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := getWithToken(t, router, "/api/v1/admin/contacts", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = getWithToken(t, router, "/api/v1/admin/contacts", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminEndpointsRejectNonAdmin(t *testing.T) {
	router, db := newTestRouter(t)
	createAdminUser(t, db)

	// Demote the user after issuing nothing; create a separate viewer
	require.NoError(t, db.Model(&domain.User{}).Where("username = ?", "admin").Update("is_admin", false).Error)

	token := loginAdmin(t, router)
	rec := getWithToken(t, router, "/api/v1/admin/contacts", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminListContacts(t *testing.T) {
	router, db := newTestRouter(t)
	createAdminUser(t, db)

	rec := postJSON(t, router, "/api/v1/contact", `{
		"name": "Ada Obi",
		"email": "ada@example.com",
		"phone": "+2348012345678",
		"subject": "Feedback",
		"message": "Great water."
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	token := loginAdmin(t, router)
	listRec := getWithToken(t, router, "/api/v1/admin/contacts?skip=0&limit=10", token)
	require.Equal(t, http.StatusOK, listRec.Code)

	var contacts []domain.ContactSubmission
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "ada@example.com", contacts[0].Email)
}

func TestAdminUpdateScholarshipStatus(t *testing.T) {
	router, db := newTestRouter(t)
	createAdminUser(t, db)

	rec := postJSON(t, router, "/api/v1/scholarships/applications", `{
		"full_name": "Ngozi Adeyemi",
		"email": "ngozi@example.com",
		"phone": "+2347012345678",
		"school": "University of Abuja",
		"year": "2026",
		"grade_level": "300 Level",
		"essay": "Clean water changed my community.",
		"document_url": "https://files.example.com/transcript.pdf"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := int(created["id"].(float64))

	token := loginAdmin(t, router)
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/admin/scholarship-applications/%d/status", id),
		strings.NewReader(`{"status": "successful"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	updateRec := httptest.NewRecorder()
	router.ServeHTTP(updateRec, req)
	require.Equal(t, http.StatusOK, updateRec.Code)

	var stored domain.ScholarshipApplication
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, domain.ScholarshipStatusSuccessful, stored.Status)
}

func TestAdminUpdateScholarshipStatusRejectsUnknownState(t *testing.T) {
	router, db := newTestRouter(t)
	createAdminUser(t, db)
	token := loginAdmin(t, router)

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/admin/scholarship-applications/1/status",
		strings.NewReader(`{"status": "approved"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUpdateScholarshipStatusNotFound(t *testing.T) {
	router, db := newTestRouter(t)
	createAdminUser(t, db)
	token := loginAdmin(t, router)

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/admin/scholarship-applications/9999/status",
		strings.NewReader(`{"status": "rejected"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
