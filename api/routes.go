package api

import (
	"github.com/gorilla/mux"

	"dovvia/internal/config"
	"dovvia/internal/notify"
	"dovvia/internal/services"
)

// Services bundles everything the router needs.
type Services struct {
	Auth        *services.AuthService
	Contact     *services.ContactService
	Distributor *services.DistributorService
	Newsletter  *services.NewsletterService
	Careers     *services.CareersService
	Scholarship *services.ScholarshipService
	Analytics   *services.AnalyticsService
	Health      *services.HealthService
	Email       *notify.EmailService
	WhatsApp    *notify.WhatsAppService
}

// SetupRoutes builds the HTTP route table.
func SetupRoutes(cfg *config.Config, svcs *Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	forms := NewFormsHandler(svcs.Contact, svcs.Distributor, svcs.Newsletter, svcs.Careers, svcs.Scholarship)
	functions := NewFunctionsHandler(svcs.Email, svcs.WhatsApp)
	analytics := NewAnalyticsHandler(svcs.Analytics)
	admin := NewAdminHandler(svcs.Auth, svcs.Contact, svcs.Distributor, svcs.Newsletter, svcs.Careers, svcs.Scholarship)
	system := NewSystemHandler(svcs.Health)

	// Open endpoints
	r.HandleFunc("/health", system.Health).Methods("GET")
	r.HandleFunc("/api/v1/auth/login", admin.Login).Methods("POST")

	// Public form endpoints
	r.HandleFunc("/api/v1/contact", forms.SubmitContact).Methods("POST")
	r.HandleFunc("/api/v1/distributors", forms.SubmitDistributor).Methods("POST")
	r.HandleFunc("/api/v1/newsletter/subscribe", forms.SubscribeNewsletter).Methods("POST")
	r.HandleFunc("/api/v1/careers/applications", forms.SubmitJobApplication).Methods("POST")
	r.HandleFunc("/api/v1/scholarships/applications", forms.SubmitScholarshipApplication).Methods("POST")

	// Page view tracking
	r.HandleFunc("/api/analytics", analytics.RecordPageView).Methods("POST")

	// Notification dispatch functions, guarded by the shared bearer
	// credential and carrying their own CORS headers.
	fns := r.PathPrefix("/functions/v1").Subrouter()
	fns.Use(FunctionsAuthMiddleware(cfg.Auth.FunctionsToken))
	fns.HandleFunc("/send-email-notification", functions.SendEmail).Methods("POST", "OPTIONS")
	fns.HandleFunc("/send-whatsapp-notification", functions.SendWhatsApp).Methods("POST", "OPTIONS")

	// Admin endpoints
	adminRoutes := r.PathPrefix("/api/v1/admin").Subrouter()
	adminRoutes.Use(JWTAuthMiddleware(svcs.Auth))
	adminRoutes.HandleFunc("/contacts", admin.ListContacts).Methods("GET")
	adminRoutes.HandleFunc("/distributors", admin.ListDistributors).Methods("GET")
	adminRoutes.HandleFunc("/newsletter-subscriptions", admin.ListNewsletterSubscriptions).Methods("GET")
	adminRoutes.HandleFunc("/job-applications", admin.ListJobApplications).Methods("GET")
	adminRoutes.HandleFunc("/scholarship-applications", admin.ListScholarshipApplications).Methods("GET")
	adminRoutes.HandleFunc("/scholarship-applications/{id}/status", admin.UpdateScholarshipStatus).Methods("PUT")

	return r
}
