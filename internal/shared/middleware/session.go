package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/shared/response"
	"authorsite-backend/pkg/jwt"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "session"

// SessionGate protects admin mutation routes: a request without a valid
// session token is rejected with 401 before any database work happens.
// The token is read from the session cookie or an Authorization bearer
// header; validity is delegated to the token manager.
func SessionGate(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := manager.ValidateSessionToken(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Set("adminName", claims.Name)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
