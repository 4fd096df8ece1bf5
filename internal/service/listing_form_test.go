package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "clearplot/internal/errors"
	"clearplot/internal/model"
)

func validForm() url.Values {
	return url.Values{
		"ListingType":     {"Buy"},
		"PropertyType":    {"Apartment"},
		"City":            {"Pune"},
		"Area":            {"1150"},
		"No. of Bedrooms": {"2"},
		"Latitude":        {"18.5204"},
		"Longitude":       {"73.8567"},
		"Price":           {"7200000"},
		"Description":     {"Bright 2BHK close to the IT corridor."},
	}
}

func TestParseListingForm_Valid(t *testing.T) {
	form := validForm()
	form.Set("Gymnasium", "Yes")
	form.Set("SwimmingPool", "No")

	sub, err := ParseListingForm(form)
	assert.NoError(t, err)
	assert.Equal(t, "Buy", sub.ListingType)
	assert.Equal(t, "Apartment", sub.PropertyType)
	assert.Equal(t, "Pune", sub.City)
	assert.Equal(t, 1150.0, sub.Area)
	assert.Equal(t, 2, sub.Bedrooms)
	assert.Equal(t, 18.5204, sub.Latitude)
	assert.Equal(t, 73.8567, sub.Longitude)
	assert.Equal(t, 7200000.0, sub.Price)
	assert.Nil(t, sub.PredictedPrice)
	assert.Equal(t, model.FeatureMap{"Gymnasium": "Yes", "SwimmingPool": "No"}, sub.Features)
}

func TestParseListingForm_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(url.Values)
		wantField string
	}{
		{
			name:      "missing listing type",
			mutate:    func(v url.Values) { v.Del("ListingType") },
			wantField: "ListingType",
		},
		{
			name:      "unknown listing type",
			mutate:    func(v url.Values) { v.Set("ListingType", "Lease") },
			wantField: "ListingType",
		},
		{
			name:      "missing property type",
			mutate:    func(v url.Values) { v.Del("PropertyType") },
			wantField: "PropertyType",
		},
		{
			name:      "missing city",
			mutate:    func(v url.Values) { v.Del("City") },
			wantField: "City",
		},
		{
			name:      "missing price",
			mutate:    func(v url.Values) { v.Del("Price") },
			wantField: "Price",
		},
		{
			name:      "unparsable price",
			mutate:    func(v url.Values) { v.Set("Price", "cheap") },
			wantField: "Price",
		},
		{
			name:      "negative price",
			mutate:    func(v url.Values) { v.Set("Price", "-5") },
			wantField: "Price",
		},
		{
			name:      "negative area",
			mutate:    func(v url.Values) { v.Set("Area", "-100") },
			wantField: "Area",
		},
		{
			name:      "fractional bedrooms",
			mutate:    func(v url.Values) { v.Set("No. of Bedrooms", "2.5") },
			wantField: "No. of Bedrooms",
		},
		{
			name:      "missing latitude",
			mutate:    func(v url.Values) { v.Del("Latitude") },
			wantField: "Latitude",
		},
		{
			name:      "bad amenity value",
			mutate:    func(v url.Values) { v.Set("Wifi", "Maybe") },
			wantField: "Wifi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			sub, err := ParseListingForm(form)
			assert.Nil(t, sub)

			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestParseListingForm_PredictedPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "absent", raw: "", want: nil},
		{name: "zero falls through", raw: "0", want: nil},
		{name: "unparsable falls through", raw: "soon", want: nil},
		{name: "valid kept", raw: "6500000", want: floatPtr(6500000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			if tt.raw != "" {
				form.Set("PredictedPrice", tt.raw)
			}

			sub, err := ParseListingForm(form)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, sub.PredictedPrice)
		})
	}
}

func TestParseListingForm_AbsentAmenitiesStayAbsent(t *testing.T) {
	sub, err := ParseListingForm(validForm())
	assert.NoError(t, err)
	assert.Empty(t, sub.Features)
	_, present := sub.Features["Gymnasium"]
	assert.False(t, present, "absent amenity must not default to No")
}

func floatPtr(v float64) *float64 {
	return &v
}
