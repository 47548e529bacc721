package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	"github.com/zaferdrn0/Fzy-sub000/internal/session"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextSessionID = "sessionID"
)

// AuthMiddleware resolves the session cookie once per request and
// parks the principal in the gin context. No cookie, a tampered
// cookie or a dead session all mean 403.
func AuthMiddleware(cfg *config.Config, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(session.CookieName)
		if err != nil || value == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not_authenticated"})
			return
		}

		sid, err := session.DecodeCookie(cfg.SessionSecret, value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_session"})
			return
		}

		data, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "session_expired"})
			return
		}

		c.Set(ContextUserID, data.UserID)
		c.Set(ContextUserEmail, data.Email)
		c.Set(ContextUserRole, data.Role)
		c.Set(ContextSessionID, sid)

		c.Next()
	}
}
