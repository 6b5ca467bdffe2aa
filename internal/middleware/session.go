package middleware

import (
	"net/http"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// SessionCookieName cookie carrying the session token
const SessionCookieName = "token"

const userIDKey = "userID"

// SessionAuth reads the session cookie and, when the token verifies, stores
// the user id in the context. Missing or invalid tokens leave the request
// anonymous (optional auth); combine with RequireAuth for protected routes.
func SessionAuth(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		switch {
		case err != nil || tokenString == "":
			sessionLookups.WithLabelValues("absent").Inc()
		default:
			claims, verifyErr := tokens.VerifyToken(tokenString)
			if verifyErr != nil {
				sessionLookups.WithLabelValues("invalid").Inc()
				break
			}
			sessionLookups.WithLabelValues("valid").Inc()
			c.Set(userIDKey, claims.UserID)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless SessionAuth resolved a user.
// The response never says why authentication failed.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			common.ErrorResponse(c, http.StatusUnauthorized, "auth.required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from context
func GetUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id != 0
}

// SetSessionCookie writes the session cookie: HttpOnly, SameSite=Lax, path /,
// Secure only when secure is set (production).
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie (Max-Age=0)
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
