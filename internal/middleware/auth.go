package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Colby-williams/hackathon-2025/session"
)

// CookieName is the HTTP-only cookie carrying the opaque session token.
const CookieName = "session"

// userIDKey for storing the resolved user id in Gin context
const userIDKey = "user_id"

// SessionAuth resolves the session cookie against the store and aborts
// with 401 when there is no valid session. Handlers behind it can rely on
// GetUserID succeeding.
func SessionAuth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"})
			return
		}

		userID, ok := sessions.Resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id placed by SessionAuth.
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
