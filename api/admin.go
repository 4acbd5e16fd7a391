package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dovvia/internal/services"
	apperrors "dovvia/pkg/errors"
)

// AdminHandler serves the authenticated admin surface: login, listing
// submissions and updating scholarship application status.
type AdminHandler struct {
	auth        *services.AuthService
	contact     *services.ContactService
	distributor *services.DistributorService
	newsletter  *services.NewsletterService
	careers     *services.CareersService
	scholarship *services.ScholarshipService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	auth *services.AuthService,
	contact *services.ContactService,
	distributor *services.DistributorService,
	newsletter *services.NewsletterService,
	careers *services.CareersService,
	scholarship *services.ScholarshipService,
) *AdminHandler {
	return &AdminHandler{
		auth:        auth,
		contact:     contact,
		distributor: distributor,
		newsletter:  newsletter,
		careers:     careers,
		scholarship: scholarship,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload services.LoginPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.auth.Login(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

// pagination reads skip and limit query parameters, clamping to sane
// bounds.
func pagination(r *http.Request) (skip, limit int) {
	skip = 0
	limit = 100

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	return skip, limit
}

// ListContacts handles GET /api/v1/admin/contacts
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := h.contact.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// ListDistributors handles GET /api/v1/admin/distributors
func (h *AdminHandler) ListDistributors(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := h.distributor.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// ListNewsletterSubscriptions handles GET /api/v1/admin/newsletter-subscriptions
func (h *AdminHandler) ListNewsletterSubscriptions(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := h.newsletter.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// ListJobApplications handles GET /api/v1/admin/job-applications
func (h *AdminHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := h.careers.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// ListScholarshipApplications handles GET /api/v1/admin/scholarship-applications
func (h *AdminHandler) ListScholarshipApplications(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)
	items, err := h.scholarship.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

type scholarshipStatusRequest struct {
	Status string `json:"status"`
}

// UpdateScholarshipStatus handles PUT /api/v1/admin/scholarship-applications/{id}/status
func (h *AdminHandler) UpdateScholarshipStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeBadRequest, "invalid application id"))
		return
	}

	var req scholarshipStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	app, err := h.scholarship.UpdateStatus(r.Context(), uint(id), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, app, http.StatusOK)
}
