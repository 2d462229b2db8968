package middleware

import (
	"crypto/subtle"
	"strings"

	"mission-report-srv/pkg/response"
	"mission-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Priority 1: Authorization header, priority 2: auth cookie
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			cookie, err := c.Cookie(m.cookieConfig.Name)
			if err != nil || cookie == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			tokenString = cookie
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))

		c.Next()
	}
}

// InternalAuth validates the internal key from the Authorization header (Bearer <key> or raw key).
// If internalKey is empty, all requests are rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c.GetHeader("Authorization"))
		if m.internalKey == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// bearerToken supports both "Bearer <token>" and a plain token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
