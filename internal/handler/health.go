package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker is implemented by optional dependencies such as the cache.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	cache HealthChecker
}

// NewHealthHandler takes the cache, or nil when caching is disabled.
func NewHealthHandler(cache HealthChecker) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// HealthCheck returns the service status. A failing cache degrades the
// status but keeps 200, since conversions work without it.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cacheStatus := "disabled"
	status := "healthy"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.HealthCheck(ctx); err != nil {
			cacheStatus = "unavailable"
			status = "degraded"
		} else {
			cacheStatus = "ok"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "hexconv-service",
		"cache":   cacheStatus,
	})
}
