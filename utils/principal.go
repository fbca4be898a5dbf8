package utils

import "github.com/gin-gonic/gin"

// GetUserRole reads the role set by the auth middleware. Empty string means
// unauthenticated.
func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) uint {
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}
