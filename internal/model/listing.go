package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing types accepted on submission and in search filters.
const (
	ListingTypeBuy  = "Buy"
	ListingTypeRent = "Rent"
)

// MaxListingImages caps the image gallery per listing.
const MaxListingImages = 5

// Listing represents one property offered for sale or rent.
//
// JSON field names follow the public API contract, which uses the
// capitalized form fields the frontend submits (ListingType, City, ...).
type Listing struct {
	ID             uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID                      `json:"userId" gorm:"type:char(36);not null;index"`
	ListingType    string                         `json:"ListingType" gorm:"size:16;not null;index"`
	PropertyType   string                         `json:"PropertyType" gorm:"size:64;not null;index"`
	City           string                         `json:"City" gorm:"size:128;index"`
	Area           float64                        `json:"Area"`
	Bedrooms       int                            `json:"Bedrooms"`
	Latitude       float64                        `json:"Latitude"`
	Longitude      float64                        `json:"Longitude"`
	Price          float64                        `json:"Price"`
	PredictedPrice float64                        `json:"PredictedPrice"`
	Description    string                         `json:"Description" gorm:"type:text"`
	BinaryFeatures datatypes.JSONType[FeatureMap] `json:"BinaryFeatures" gorm:"column:binary_features"`
	Images         datatypes.JSONSlice[string]    `json:"images"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Features returns the amenity map stored on the listing, never nil.
func (l *Listing) Features() FeatureMap {
	m := l.BinaryFeatures.Data()
	if m == nil {
		return FeatureMap{}
	}
	return m
}

// ValidListingType reports whether t is one of the accepted listing types.
func ValidListingType(t string) bool {
	return t == ListingTypeBuy || t == ListingTypeRent
}
