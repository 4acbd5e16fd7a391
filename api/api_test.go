package api

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"dovvia/internal/config"
	"dovvia/internal/domain"
	"dovvia/internal/notify"
	"dovvia/internal/services"
	"dovvia/internal/util"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
		Conn:       sqlDB,
	}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.ContactSubmission{},
		&domain.DistributorInquiry{},
		&domain.NewsletterSubscription{},
		&domain.JobApplication{},
		&domain.ScholarshipApplication{},
		&domain.PageView{},
	))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SecretKey:          "test-secret-key-for-api-tests-0123456789",
			TokenExpiryMinutes: 30,
			Algorithm:          "HS256",
			FunctionsToken:     "fn-secret",
		},
	}
}

// newTestRouter wires the full route table against a throwaway
// database. Notification channels stay unconfigured so no outbound
// calls leave the test.
func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	cfg := newTestConfig()
	config.Set(cfg)
	db := newTestDB(t)

	emailSvc := notify.NewEmailService(&config.EmailConfig{})
	whatsappSvc := notify.NewWhatsAppService(&config.WhatsAppConfig{})
	webhookSvc := notify.NewWebhookService(&config.CareersConfig{})

	svcs := &Services{
		Auth:        services.NewAuthService(db),
		Contact:     services.NewContactService(db, emailSvc, whatsappSvc),
		Distributor: services.NewDistributorService(db),
		Newsletter:  services.NewNewsletterService(db),
		Careers:     services.NewCareersService(db, webhookSvc),
		Scholarship: services.NewScholarshipService(db),
		Analytics:   services.NewAnalyticsService(db),
		Health:      services.NewHealthService(),
		Email:       emailSvc,
		WhatsApp:    whatsappSvc,
	}

	return SetupRoutes(cfg, svcs), db
}

func createAdminUser(t *testing.T, db *gorm.DB) {
	t.Helper()
	hashed, err := util.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		Username:       "admin",
		Email:          "admin@dovvia.com",
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        true,
	}).Error)
}
