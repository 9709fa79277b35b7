// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstream/storefront/internal/session"
)

const (
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session"
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header, creating one when the header is absent, malformed or expired.
// The resolved id is echoed back so the client can carry it forward.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.GetOrCreate(c.GetHeader(SessionHeader))
		c.Set(sessionContextKey, sess)
		c.Header(SessionHeader, sess.ID.String())
		c.Next()
	}
}

// GetSession returns the session attached by SessionMiddleware.
func GetSession(c *gin.Context) *session.Session {
	v, _ := c.Get(sessionContextKey)
	sess, _ := v.(*session.Session)
	return sess
}
