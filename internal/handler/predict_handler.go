package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearplot/internal/model"
	"clearplot/internal/predictor"
)

// PredictHandler exposes the price prediction endpoint. Prediction
// here is explicitly requested by the caller, so unlike the submission
// fallback, a failing prediction service surfaces as an error.
type PredictHandler struct {
	client *predictor.Client
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(client *predictor.Client) *PredictHandler {
	return &PredictHandler{client: client}
}

// PredictRequest carries the attributes the price model scores on.
// Zero is a legitimate value for bedrooms (plots) and for coordinates,
// so the fields carry range checks rather than presence checks.
type PredictRequest struct {
	Area      float64          `json:"Area" validate:"gt=0"`
	Bedrooms  int              `json:"Bedrooms" validate:"gte=0"`
	Latitude  float64          `json:"Latitude" validate:"gte=-90,lte=90"`
	Longitude float64          `json:"Longitude" validate:"gte=-180,lte=180"`
	Features  model.FeatureMap `json:"BinaryFeatures"`
}

// PredictResponse carries the estimated price.
type PredictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}

// Predict godoc
// @Summary Estimate a property's market price
// @Tags properties
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Property attributes"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /predict-price [post]
func (h *PredictHandler) Predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := h.client.Predict(c.Request().Context(), predictor.Input{
		Area:      req.Area,
		Bedrooms:  req.Bedrooms,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Features:  req.Features,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, PredictResponse{PredictedPrice: price})
}
