package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"authorsite-backend/internal/config"
	"authorsite-backend/internal/domains/auth"
	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/internal/shared/response"
)

// AuthHandler - HTTP layer for the admin session
type AuthHandler struct {
	service auth.Service
	session config.SessionConfig
}

// NewAuthHandler - Constructor
func NewAuthHandler(service auth.Service, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: service, session: session}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	token, session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, verrs.Error())
			return
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalServerError(c, "internal server error")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token,
		int(h.session.Expiry.Seconds()), "/", "", h.session.Secure, true)

	response.Success(c, http.StatusOK, gin.H{
		"user":  session,
		"token": token,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.session.Secure, true)

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Session handles GET /api/auth/session. Always 200: an invalid or absent
// token is reported as an unauthenticated session, not an error.
func (h *AuthHandler) Session(c *gin.Context) {
	session := h.service.Verify(c.Request.Context(), h.extractToken(c))
	response.Success(c, http.StatusOK, session)
}

func (h *AuthHandler) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
