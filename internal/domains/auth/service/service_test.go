package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/config"
	"authorsite-backend/internal/domains/auth"
	"authorsite-backend/pkg/jwt"
)

func newService(t *testing.T, admin config.AdminConfig) auth.Service {
	t.Helper()
	return NewAuthService(admin, jwt.NewManager("test-secret", time.Hour))
}

func TestLoginWithPlainPassword(t *testing.T) {
	svc := newService(t, config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
		Name:     "Admin",
	})

	token, session, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(t, config.AdminConfig{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
	})

	_, session, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newService(t, config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
	})

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	svc := newService(t, config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
	})

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "intruder@example.com",
		Password: "hunter2",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsUnconfiguredAdmin(t *testing.T) {
	svc := newService(t, config.AdminConfig{})

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "a@b.com",
		Password: "x",
	})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	svc := newService(t, config.AdminConfig{
		Email:    "admin@example.com",
		Password: "hunter2",
		Name:     "Admin",
	})

	token, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	session := svc.Verify(context.Background(), token)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "Admin", session.Name)

	assert.False(t, svc.Verify(context.Background(), "").Authenticated)
	assert.False(t, svc.Verify(context.Background(), "bogus").Authenticated)
}
