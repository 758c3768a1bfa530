package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared/response"
)

// Recovery converts panics into a 500 response instead of killing the
// connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("requestID")).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("panic recovered")

				response.ErrorResponse(c, http.StatusInternalServerError, "SYS_001",
					"Internal server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
