package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"clearplot/internal/predictor"
)

type echoValidator struct {
	validator *validator.Validate
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func doPredict(t *testing.T, h *PredictHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = &echoValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/predict-price", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Predict(e.NewContext(req, rec))
	if err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestPredictHandler_ZeroBedroomsIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"predicted_price": 3200000})
	}))
	defer srv.Close()

	h := NewPredictHandler(predictor.New(srv.URL))

	// A plot listing has no bedrooms; that must reach the model, not 400.
	rec := doPredict(t, h, `{"Area": 1800, "Bedrooms": 0, "Latitude": 18.52, "Longitude": 73.85}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp PredictResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3200000.0, resp.PredictedPrice)
}

func TestPredictHandler_ZeroCoordinatesAreValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"predicted_price": 100000})
	}))
	defer srv.Close()

	h := NewPredictHandler(predictor.New(srv.URL))

	rec := doPredict(t, h, `{"Area": 900, "Bedrooms": 2, "Latitude": 0, "Longitude": 0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPredictHandler_RejectsOutOfRangeInput(t *testing.T) {
	h := NewPredictHandler(predictor.New("http://unused"))

	tests := []struct {
		name string
		body string
	}{
		{name: "zero area", body: `{"Area": 0, "Bedrooms": 2, "Latitude": 18.52, "Longitude": 73.85}`},
		{name: "negative bedrooms", body: `{"Area": 900, "Bedrooms": -1, "Latitude": 18.52, "Longitude": 73.85}`},
		{name: "latitude beyond pole", body: `{"Area": 900, "Bedrooms": 2, "Latitude": 91, "Longitude": 73.85}`},
		{name: "longitude wraps", body: `{"Area": 900, "Bedrooms": 2, "Latitude": 18.52, "Longitude": 181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPredict(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
