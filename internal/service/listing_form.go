package service

import (
	"net/url"
	"strconv"

	apperrors "clearplot/internal/errors"
	"clearplot/internal/model"
)

// Multipart form field names as submitted by the frontend.
const (
	fieldListingType  = "ListingType"
	fieldPropertyType = "PropertyType"
	fieldCity         = "City"
	fieldArea         = "Area"
	fieldBedrooms     = "No. of Bedrooms"
	fieldLatitude     = "Latitude"
	fieldLongitude    = "Longitude"
	fieldPrice        = "Price"
	fieldPredicted    = "PredictedPrice"
	fieldDescription  = "Description"
)

// ListingSubmission is the typed result of normalizing the flat
// multipart form a client posts.
type ListingSubmission struct {
	ListingType    string
	PropertyType   string
	City           string
	Area           float64
	Bedrooms       int
	Latitude       float64
	Longitude      float64
	Price          float64
	PredictedPrice *float64 // nil when absent or unusable
	Description    string
	Features       model.FeatureMap
}

// ParseListingForm maps the flat string form fields onto a typed
// ListingSubmission, coercing each field explicitly. This is the one
// loosely-typed boundary in the submission path; everything behind it
// works with the typed struct.
func ParseListingForm(values url.Values) (*ListingSubmission, error) {
	sub := &ListingSubmission{
		ListingType:  values.Get(fieldListingType),
		PropertyType: values.Get(fieldPropertyType),
		City:         values.Get(fieldCity),
		Description:  values.Get(fieldDescription),
		Features:     model.FeatureMap{},
	}

	if !model.ValidListingType(sub.ListingType) {
		return nil, apperrors.NewValidationError(fieldListingType, `must be "Buy" or "Rent"`)
	}
	if sub.PropertyType == "" {
		return nil, apperrors.NewValidationError(fieldPropertyType, "required")
	}
	if sub.City == "" {
		return nil, apperrors.NewValidationError(fieldCity, "required")
	}

	var err error
	if sub.Area, err = parseFloatField(values, fieldArea); err != nil {
		return nil, err
	}
	if sub.Area < 0 {
		return nil, apperrors.NewValidationError(fieldArea, "must not be negative")
	}
	if sub.Bedrooms, err = parseIntField(values, fieldBedrooms); err != nil {
		return nil, err
	}
	if sub.Latitude, err = parseFloatField(values, fieldLatitude); err != nil {
		return nil, err
	}
	if sub.Longitude, err = parseFloatField(values, fieldLongitude); err != nil {
		return nil, err
	}
	if sub.Price, err = parseFloatField(values, fieldPrice); err != nil {
		return nil, err
	}
	if sub.Price < 0 {
		return nil, apperrors.NewValidationError(fieldPrice, "must not be negative")
	}

	// PredictedPrice is optional; an absent, unparsable or non-positive
	// value falls through to the fallback policy instead of failing.
	if raw := values.Get(fieldPredicted); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			sub.PredictedPrice = &v
		}
	}

	// Collect present amenity flags; names outside the vocabulary are
	// not amenities and are left alone, absent names stay absent rather
	// than defaulting to "No".
	for _, name := range model.FeatureNames {
		if !values.Has(name) {
			continue
		}
		v := values.Get(name)
		if !model.ValidFeatureValue(v) {
			return nil, apperrors.NewValidationError(name, `must be "Yes" or "No"`)
		}
		sub.Features[name] = v
	}

	return sub, nil
}

func parseFloatField(values url.Values, field string) (float64, error) {
	raw := values.Get(field)
	if raw == "" {
		return 0, apperrors.NewValidationError(field, "required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "must be a number")
	}
	return v, nil
}

func parseIntField(values url.Values, field string) (int, error) {
	raw := values.Get(field)
	if raw == "" {
		return 0, apperrors.NewValidationError(field, "required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "must be an integer")
	}
	return v, nil
}
