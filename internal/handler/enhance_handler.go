package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearplot/internal/enhance"
)

// EnhanceHandler exposes the description enhancement endpoint.
type EnhanceHandler struct {
	enhancer *enhance.Enhancer
}

// NewEnhanceHandler creates a new enhance handler.
func NewEnhanceHandler(enhancer *enhance.Enhancer) *EnhanceHandler {
	return &EnhanceHandler{enhancer: enhancer}
}

// EnhanceRequest carries the raw description to rewrite.
type EnhanceRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// EnhanceResponse carries the rewritten description.
type EnhanceResponse struct {
	Enhanced string `json:"enhanced"`
}

// Enhance godoc
// @Summary Rewrite a property description
// @Tags properties
// @Accept json
// @Produce json
// @Param request body EnhanceRequest true "Description to rewrite"
// @Success 200 {object} EnhanceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /enhance-description [post]
func (h *EnhanceHandler) Enhance(c echo.Context) error {
	var req EnhanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enhanced, err := h.enhancer.Rewrite(c.Request().Context(), req.Prompt)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, EnhanceResponse{Enhanced: enhanced})
}
