package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets pages on allowOrigin call the API and post htmx forms.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers",
			"Origin, Content-Type, Accept, X-Request-ID, X-Requested-With, "+
				"HX-Request, HX-Trigger, HX-Target, HX-Current-URL")
		h.Set("Access-Control-Max-Age", "86400")
		if allowOrigin != "*" {
			h.Add("Vary", "Origin")
		}

		// preflight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
