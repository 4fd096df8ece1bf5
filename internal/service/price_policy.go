package service

import "clearplot/internal/model"

// PredictedPricePolicy derives a predicted price when a submission
// carries no usable estimate.
type PredictedPricePolicy func(listingType string, price float64) float64

// DefaultPredictedPricePolicy estimates rentals at 30% of the asking
// price and everything else at the asking price itself.
func DefaultPredictedPricePolicy(listingType string, price float64) float64 {
	if listingType == model.ListingTypeRent {
		return 0.3 * price
	}
	return price
}
