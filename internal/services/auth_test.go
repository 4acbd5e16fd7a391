package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dovvia/internal/config"
	"dovvia/internal/domain"
	"dovvia/internal/util"
	apperrors "dovvia/pkg/errors"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Auth: config.AuthConfig{
			SecretKey:          "test-secret-key-for-auth-tests-0123456789",
			TokenExpiryMinutes: 30,
			Algorithm:          "HS256",
		},
	})
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, admin, active bool) {
	t.Helper()
	hashed, err := util.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		Username:       username,
		Email:          username + "@dovvia.com",
		HashedPassword: hashed,
		IsActive:       active,
		IsAdmin:        admin,
	}).Error)
}

func TestLoginIssuesToken(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	createTestUser(t, db, "admin", "secret", true, true)
	svc := NewAuthService(db)

	result, err := svc.Login(context.Background(), &LoginPayload{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.NotEmpty(t, result.AccessToken)

	// Last login is recorded
	var user domain.User
	require.NoError(t, db.Where("username = ?", "admin").First(&user).Error)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	createTestUser(t, db, "admin", "secret", true, true)
	svc := NewAuthService(db)

	_, err := svc.Login(context.Background(), &LoginPayload{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.Login(context.Background(), &LoginPayload{Username: "ghost", Password: "secret"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	createTestUser(t, db, "former", "secret", true, false)
	svc := NewAuthService(db)

	_, err := svc.Login(context.Background(), &LoginPayload{Username: "former", Password: "secret"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthenticateRoundTrip(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	createTestUser(t, db, "admin", "secret", true, true)
	svc := NewAuthService(db)

	result, err := svc.Login(context.Background(), &LoginPayload{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsAdmin)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
