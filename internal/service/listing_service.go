package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "clearplot/internal/errors"
	"clearplot/internal/model"
	"clearplot/internal/query"
	"clearplot/internal/repository"
)

// SearchResult bundles one page of listings with its pagination state.
type SearchResult struct {
	Items []model.Listing
	Meta  query.PageMeta
}

// ListingService handles listing search and submission.
type ListingService interface {
	Search(ctx context.Context, filter query.Filter, page query.Page, callerID *uuid.UUID) (*SearchResult, error)
	Submit(ctx context.Context, ownerID uuid.UUID, sub *ListingSubmission, imageURLs []string) (*model.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*model.Listing, error)
}

type listingService struct {
	repo        repository.ListingRepository
	pricePolicy PredictedPricePolicy
}

// NewListingService creates a new listing service. A nil pricePolicy
// falls back to DefaultPredictedPricePolicy.
func NewListingService(repo repository.ListingRepository, pricePolicy PredictedPricePolicy) ListingService {
	if pricePolicy == nil {
		pricePolicy = DefaultPredictedPricePolicy
	}
	return &listingService{repo: repo, pricePolicy: pricePolicy}
}

// Search runs a filtered, paginated listing query. A present caller
// identity excludes that caller's own listings; anonymous callers see
// everything. One find plus one count per request, nothing cached.
func (s *listingService) Search(ctx context.Context, filter query.Filter, page query.Page, callerID *uuid.UUID) (*SearchResult, error) {
	if callerID != nil {
		filter.ExcludeOwner = callerID
	}
	conds := filter.Build()

	total, err := s.repo.Count(ctx, conds)
	if err != nil {
		return nil, fmt.Errorf("count listings: %w", err)
	}

	items, err := s.repo.Find(ctx, conds, page.Offset(), page.Limit())
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	if items == nil {
		items = []model.Listing{}
	}

	return &SearchResult{Items: items, Meta: page.Meta(total)}, nil
}

// Submit stores a normalized submission as a new listing owned by
// ownerID. imageURLs must already be uploaded and is capped at
// model.MaxListingImages.
func (s *listingService) Submit(ctx context.Context, ownerID uuid.UUID, sub *ListingSubmission, imageURLs []string) (*model.Listing, error) {
	if len(imageURLs) > model.MaxListingImages {
		return nil, apperrors.ErrTooManyImages
	}

	predicted := s.pricePolicy(sub.ListingType, sub.Price)
	if sub.PredictedPrice != nil {
		predicted = *sub.PredictedPrice
	}

	listing := &model.Listing{
		UserID:         ownerID,
		ListingType:    sub.ListingType,
		PropertyType:   sub.PropertyType,
		City:           sub.City,
		Area:           sub.Area,
		Bedrooms:       sub.Bedrooms,
		Latitude:       sub.Latitude,
		Longitude:      sub.Longitude,
		Price:          sub.Price,
		PredictedPrice: predicted,
		Description:    sub.Description,
		BinaryFeatures: datatypes.NewJSONType(sub.Features),
		Images:         datatypes.NewJSONSlice(imageURLs),
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return listing, nil
}

// GetListing returns a single listing by id.
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}
