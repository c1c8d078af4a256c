package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/config"
	"authorsite-backend/internal/domains/auth"
	"authorsite-backend/pkg/jwt"
)

// authService validates logins against the single static admin credential
// pair and mints session tokens.
type authService struct {
	admin  config.AdminConfig
	tokens *jwt.Manager
}

// NewAuthService - Constructor
func NewAuthService(admin config.AdminConfig, tokens *jwt.Manager) auth.Service {
	return &authService{admin: admin, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (string, *auth.Session, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	if !s.credentialsMatch(req.Email, req.Password) {
		log.Warn().Str("email", req.Email).Msg("Failed admin login attempt")
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(s.admin.Email, s.admin.Name)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("email", s.admin.Email).Msg("Admin logged in")
	return token, &auth.Session{
		Authenticated: true,
		Email:         s.admin.Email,
		Name:          s.admin.Name,
	}, nil
}

func (s *authService) Verify(ctx context.Context, token string) *auth.Session {
	if token == "" {
		return &auth.Session{Authenticated: false}
	}

	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return &auth.Session{Authenticated: false}
	}

	return &auth.Session{
		Authenticated: true,
		Email:         claims.Email,
		Name:          claims.Name,
	}
}

// credentialsMatch compares in constant time. A bcrypt hash, when
// configured, takes precedence over the plaintext fallback.
func (s *authService) credentialsMatch(email, password string) bool {
	if s.admin.Email == "" {
		return false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1

	var passwordOK bool
	if s.admin.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	} else if s.admin.Password != "" {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	}

	return emailOK && passwordOK
}
