package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
)

// AdminOnly allows the request through only when the authenticated
// caller carries the admin role. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != "admin" {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
