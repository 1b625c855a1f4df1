package middleware

import (
	"github.com/gin-gonic/gin"

	"scribe/internal/pkg/id"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, honoring one supplied by the
// caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = id.New()
		}

		c.Set("request_id", rid)
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}
