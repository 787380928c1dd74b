package middleware

import (
	"time"

	"hexconv-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no route (NoRoute handlers).
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count and latency per route pattern.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
