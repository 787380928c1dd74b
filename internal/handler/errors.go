package handler

import (
	"errors"
	"net/http"

	"hexconv-service/internal/model"
	"hexconv-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondConversionError turns a conversion failure into a response.
// ParseError is the only expected kind and yields 400. Anything else is
// recorded on the gin context for the access log and answered with a 500
// JSON body.
func respondConversionError(c *gin.Context, err error) {
	var parseErr *service.ParseError
	if errors.As(err, &parseErr) {
		c.String(http.StatusBadRequest, "Something went wrong: %s", parseErr.Error())
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Error: "Internal Server Error",
	})
}

func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error:   model.ErrCodeInvalidBody,
		Details: err.Error(),
	})
}

// APINotFound is the fallback for any unmatched route under /api.
func APINotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, model.ErrorResponse{Error: model.ErrCodeNotFound})
}
