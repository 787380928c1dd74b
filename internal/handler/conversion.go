package handler

import (
	"net/http"

	"hexconv-service/internal/model"
	"hexconv-service/internal/service"
	"hexconv-service/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ConversionHandler struct {
	conversionService service.ConversionServiceInterface
}

func NewConversionHandler(conversionService service.ConversionServiceInterface) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
	}
}

// Hexify handles POST /api/hexify.
func (h *ConversionHandler) Hexify(c *gin.Context) {
	var req model.HexifyRequest
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		respondInvalidBody(c, err)
		return
	}
	hex, err := h.conversionService.Hexify(c.Request.Context(), req.DecValue)
	if err != nil {
		respondConversionError(c, err)
		return
	}
	c.String(http.StatusOK, hex)
}

// Decify handles POST /api/decify.
func (h *ConversionHandler) Decify(c *gin.Context) {
	var req model.DecifyRequest
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		respondInvalidBody(c, err)
		return
	}
	dec, err := h.conversionService.Decify(c.Request.Context(), req.HexValue)
	if err != nil {
		respondConversionError(c, err)
		return
	}
	c.String(http.StatusOK, dec)
}

// HexifyFragment handles POST /html/hexify from the htmx form.
func (h *ConversionHandler) HexifyFragment(c *gin.Context) {
	var req model.HexifyRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		respondInvalidBody(c, err)
		return
	}
	hex, err := h.conversionService.Hexify(c.Request.Context(), req.DecValue)
	if err != nil {
		respondConversionError(c, err)
		return
	}
	c.HTML(http.StatusOK, web.ResultTemplate, model.ConversionView{Name: "Hex", Value: hex})
}

// DecifyFragment handles POST /html/decify from the htmx form.
func (h *ConversionHandler) DecifyFragment(c *gin.Context) {
	var req model.DecifyRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		respondInvalidBody(c, err)
		return
	}
	dec, err := h.conversionService.Decify(c.Request.Context(), req.HexValue)
	if err != nil {
		respondConversionError(c, err)
		return
	}
	c.HTML(http.StatusOK, web.ResultTemplate, model.ConversionView{Name: "Decimal", Value: dec})
}
