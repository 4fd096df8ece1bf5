// Package predictor is a thin HTTP client for the external price
// estimation service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "clearplot/internal/errors"
	"clearplot/internal/model"
)

// Input carries the property attributes the model scores on. Binary
// features ride alongside as 0/1 columns keyed by amenity name.
type Input struct {
	Area      float64
	Bedrooms  int
	Latitude  float64
	Longitude float64
	Features  model.FeatureMap
}

// MarshalJSON flattens the input into the column layout the model
// expects, including the "No. of Bedrooms" column name.
func (in Input) MarshalJSON() ([]byte, error) {
	row := map[string]interface{}{
		"Area":            in.Area,
		"No. of Bedrooms": in.Bedrooms,
		"Latitude":        in.Latitude,
		"Longitude":       in.Longitude,
	}
	for name, v := range in.Features {
		if v == model.FeatureYes {
			row[name] = 1
		} else {
			row[name] = 0
		}
	}
	return json.Marshal(row)
}

// Client calls the prediction service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a predictor client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type predictResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	Error          string  `json:"error"`
}

// Predict returns the estimated price for the given attributes. Any
// transport or service failure surfaces as ErrPredictionUnavailable;
// the caller decides whether that is fatal.
func (c *Client) Predict(ctx context.Context, in Input) (float64, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("marshal prediction input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrPredictionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", apperrors.ErrPredictionUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", apperrors.ErrPredictionUnavailable, err)
	}
	if out.Error != "" {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrPredictionUnavailable, out.Error)
	}
	return out.PredictedPrice, nil
}
