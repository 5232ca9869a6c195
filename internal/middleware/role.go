package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group to users carrying one of the given
// roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_role"})
			return
		}

		role, _ := roleVal.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access_denied"})
	}
}
