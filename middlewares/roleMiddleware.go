package middlewares

import (
	"github.com/gin-gonic/gin"

	"rms-api/utils"
	"rms-api/utils/apperrors"
)

// RoleMiddleware allows only the listed roles past. Must run after
// AuthMiddleware.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.GetUserRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		err := apperrors.Forbidden("Insufficient role")
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		c.Abort()
	}
}
