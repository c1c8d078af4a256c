package auth

import "context"

// Service is the admin authentication contract.
type Service interface {
	// Login checks the static admin credentials and mints a session token.
	Login(ctx context.Context, req *LoginRequest) (token string, session *Session, err error)
	// Verify resolves a raw session token into a session, never erroring:
	// an invalid token is simply an unauthenticated session.
	Verify(ctx context.Context, token string) *Session
}
