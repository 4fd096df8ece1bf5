package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"clearplot/internal/model"
	"clearplot/internal/query"
)

// ListingRepository defines listing persistence operations. Listings
// are insert-only: there are no update or delete operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Find(ctx context.Context, conds []query.Condition, offset, limit int) ([]model.Listing, error)
	Count(ctx context.Context, conds []query.Condition) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create inserts a new listing record.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID finds a listing by ID.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// Find returns the listings matching conds inside the given window,
// newest first. The secondary sort on id keeps consecutive pages
// disjoint when creation timestamps collide.
func (r *listingRepository) Find(ctx context.Context, conds []query.Condition, offset, limit int) ([]model.Listing, error) {
	var listings []model.Listing
	err := applyConditions(r.db.WithContext(ctx).Model(&model.Listing{}), conds).
		Order("created_at DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// Count returns the number of listings matching conds.
func (r *listingRepository) Count(ctx context.Context, conds []query.Condition) (int64, error) {
	var total int64
	err := applyConditions(r.db.WithContext(ctx).Model(&model.Listing{}), conds).
		Count(&total).Error
	return total, err
}

// applyConditions translates the builder's conditions into GORM
// clauses. Field names only ever come from the query package's column
// constants or the closed amenity vocabulary.
func applyConditions(db *gorm.DB, conds []query.Condition) *gorm.DB {
	for _, c := range conds {
		switch c.Op {
		case query.OpEq:
			db = db.Where(fmt.Sprintf("%s = ?", c.Field), c.Value)
		case query.OpNe:
			db = db.Where(fmt.Sprintf("%s <> ?", c.Field), c.Value)
		case query.OpGte:
			db = db.Where(fmt.Sprintf("%s >= ?", c.Field), c.Value)
		case query.OpLte:
			db = db.Where(fmt.Sprintf("%s <= ?", c.Field), c.Value)
		case query.OpFeatureEq:
			db = db.Where(datatypes.JSONQuery("binary_features").Equals(c.Value, c.Field))
		}
	}
	return db
}
