package api

import (
	"net/http"

	"dovvia/internal/services"
)

// FormsHandler exposes the public form submission endpoints.
type FormsHandler struct {
	contact     *services.ContactService
	distributor *services.DistributorService
	newsletter  *services.NewsletterService
	careers     *services.CareersService
	scholarship *services.ScholarshipService
}

// NewFormsHandler creates a new forms handler
func NewFormsHandler(
	contact *services.ContactService,
	distributor *services.DistributorService,
	newsletter *services.NewsletterService,
	careers *services.CareersService,
	scholarship *services.ScholarshipService,
) *FormsHandler {
	return &FormsHandler{
		contact:     contact,
		distributor: distributor,
		newsletter:  newsletter,
		careers:     careers,
		scholarship: scholarship,
	}
}

// SubmitContact handles POST /api/v1/contact
func (h *FormsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload services.ContactSubmitPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.contact.Submit(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result, http.StatusCreated)
}

// SubmitDistributor handles POST /api/v1/distributors
func (h *FormsHandler) SubmitDistributor(w http.ResponseWriter, r *http.Request) {
	var payload services.DistributorSubmitPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.distributor.Submit(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result, http.StatusCreated)
}

// SubscribeNewsletter handles POST /api/v1/newsletter/subscribe.
// A repeat subscription responds 200 with already_subscribed set, not
// an error.
func (h *FormsHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var payload services.NewsletterSubscribePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.newsletter.Subscribe(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadySubscribed {
		status = http.StatusOK
	}
	writeJSON(w, result, status)
}

// SubmitJobApplication handles POST /api/v1/careers/applications
func (h *FormsHandler) SubmitJobApplication(w http.ResponseWriter, r *http.Request) {
	var payload services.JobApplicationPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.careers.Apply(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result, http.StatusCreated)
}

// SubmitScholarshipApplication handles POST /api/v1/scholarships/applications
func (h *FormsHandler) SubmitScholarshipApplication(w http.ResponseWriter, r *http.Request) {
	var payload services.ScholarshipApplyPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.scholarship.Apply(r.Context(), &payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result, http.StatusCreated)
}
