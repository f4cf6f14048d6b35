package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key under which the authenticated user's ID is stored.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, falling back to the request context. The boolean reports whether
// an ID was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if v := c.Request.Context().Value(userIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
