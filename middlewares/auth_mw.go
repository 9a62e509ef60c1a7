package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aniket-49001/Railway-Concession/store"
	"github.com/Aniket-49001/Railway-Concession/utils"
)

const (
	ContextEmail     = "userEmail"
	ContextRole      = "userRole"
	ContextCollegeID = "collegeId"
)

// SessionCookie is the name of the opaque session-token cookie.
const SessionCookie = "session_token"

// AuthMiddleware resolves the caller's identity from the session cookie,
// falling back to a bearer JWT for non-browser clients.
func AuthMiddleware(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if sess, ok := sessions.Get(token); ok {
				c.Set(ContextEmail, sess.Email)
				c.Set(ContextRole, sess.Role)
				c.Set(ContextCollegeID, sess.CollegeID)
				c.Next()
				return
			}
		}

		auth := c.GetHeader("Authorization")
		if auth != "" {
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			claims, err := utils.ValidateJWT(tokenStr)
			if err == nil {
				c.Set(ContextEmail, claims.Email)
				c.Set(ContextRole, claims.Role)
				c.Set(ContextCollegeID, claims.CollegeID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
	}
}

// RequireRole gates a route to the given roles. Runs after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	}
}
