package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader     = "X-Session-ID"
	sessionCookie     = "sid"
	sessionContextKey = "session_id"

	// cookie lifetime matches the cart retention window
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware resolves the shopper's session ID. Clients may pass
// an explicit X-Session-ID header (API clients) or rely on the sid
// cookie (browsers). When neither is present a new ID is issued and set
// as a cookie.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Header(sessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID resolved by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
