package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticAsset serves one file from assets with a fixed content type. The
// file is read once, so a missing asset fails at route setup rather than
// per request.
func StaticAsset(assets fs.FS, name, contentType string) (gin.HandlerFunc, error) {
	data, err := fs.ReadFile(assets, name)
	if err != nil {
		return nil, fmt.Errorf("read static asset %s: %w", name, err)
	}
	return func(c *gin.Context) {
		c.Data(http.StatusOK, contentType, data)
	}, nil
}
