package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// companyIDKey is the key used to store the authenticated tenant's company ID.
const companyIDKey = contextKey("companyID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetCompanyIDFromContext retrieves the authenticated company ID from the
// Gin context. Every data access is scoped by this value.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(companyIDKey); v != nil {
		companyID, ok := v.(string)
		return companyID, ok
	}
	return "", false
}
