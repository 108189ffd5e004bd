package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"devmatter/pkg/utils"
)

// BodyLimitMiddleware caps the request body size. Oversize requests get a 413
// with the canonical request-too-large error code before any handler runs.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			tooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func tooLarge(c *gin.Context) {
	e := utils.ErrRequestTooLarge
	c.AbortWithStatusJSON(e.Status, gin.H{
		"error":   e.Kind,
		"message": e.Message,
	})
}
