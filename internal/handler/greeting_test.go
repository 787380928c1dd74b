package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hexconv-service/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGreetingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)
	router.GET("/", HelloWorld)
	router.GET("/:name", HelloName)
	return router
}

func TestHelloWorld(t *testing.T) {
	router := setupGreetingRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello, world!")
}

func TestHelloName(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		contains string
	}{
		{name: "Plain", path: "/Alice", contains: "Hello, Alice!"},
		{name: "Unicode", path: "/%D0%9C%D0%B0%D0%BA%D1%81", contains: "Hello, Макс!"},
		{name: "Ampersand", path: "/a&b", contains: "Hello, a&amp;b!"},
		{name: "Script", path: "/%3Cscript%3E", contains: "Hello, &lt;script&gt;!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupGreetingRouter(t)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
			assert.NotContains(t, w.Body.String(), "<script>")
		})
	}
}
