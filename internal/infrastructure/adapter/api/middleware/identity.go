package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key holding the acting user's ID
const ContextUserIDKey = "acting_user_id"

// Identity middleware extracts the acting user's ID from the X-User-ID
// header or the user_id query parameter. Routes that need an identity check
// it with ActingUserID; unauthenticated routes simply ignore it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = c.Query("user_id")
		}
		if userID != "" {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// ActingUserID returns the acting user's ID from the request context
func ActingUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserIDKey)
	return userID, userID != ""
}
