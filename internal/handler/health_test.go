package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(ctx context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	testCases := []struct {
		name       string
		checker    HealthChecker
		wantStatus string
		wantCache  string
	}{
		{name: "NoCache", checker: nil, wantStatus: "healthy", wantCache: "disabled"},
		{name: "CacheOK", checker: stubChecker{}, wantStatus: "healthy", wantCache: "ok"},
		{name: "CacheDown", checker: stubChecker{err: assert.AnError}, wantStatus: "degraded", wantCache: "unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/health", NewHealthHandler(tc.checker).HealthCheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantStatus, body["status"])
			assert.Equal(t, tc.wantCache, body["cache"])
		})
	}
}
