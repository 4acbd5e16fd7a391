package services

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"dovvia/internal/domain"
	"dovvia/internal/notify"
)

// newTestDB opens a throwaway SQLite database with the same dialector
// settings production uses.
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

// fakeEmailNotifier records dispatches and can be primed to fail.
type fakeEmailNotifier struct {
	mu       sync.Mutex
	calls    int
	lastForm notify.FormType
	err      error
}

func (f *fakeEmailNotifier) SendFormNotification(p *notify.Payload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastForm = p.FormType
	if f.err != nil {
		return "", f.err
	}
	return "msg_test", nil
}

func (f *fakeEmailNotifier) IsConfigured() bool { return true }

func (f *fakeEmailNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeWhatsAppNotifier records dispatches and can be primed to fail or
// act unconfigured.
type fakeWhatsAppNotifier struct {
	mu           sync.Mutex
	calls        int
	err          error
	unconfigured bool
}

func (f *fakeWhatsAppNotifier) SendFormNotification(p *notify.Payload) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return !f.unconfigured, nil
}

func (f *fakeWhatsAppNotifier) IsConfigured() bool { return !f.unconfigured }

func (f *fakeWhatsAppNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeWebhookRelay records delivered payloads and can be primed to
// fail or act unconfigured.
type fakeWebhookRelay struct {
	mu           sync.Mutex
	delivered    []any
	err          error
	unconfigured bool
}

func (f *fakeWebhookRelay) Deliver(payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delivered = append(f.delivered, payload)
	return f.err
}

func (f *fakeWebhookRelay) IsConfigured() bool { return !f.unconfigured }

func (f *fakeWebhookRelay) deliveredCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.delivered)
}
