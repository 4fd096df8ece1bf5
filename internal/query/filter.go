// Package query builds store-agnostic search predicates and pagination
// windows for listing retrieval. Building a filter never touches the
// database; the repository layer translates the resulting conditions.
package query

import (
	"strings"

	"github.com/google/uuid"

	"clearplot/internal/model"
)

// Op identifies how a condition compares its field against its value.
type Op int

const (
	// OpEq matches field == value.
	OpEq Op = iota
	// OpNe matches field != value.
	OpNe
	// OpGte matches field >= value.
	OpGte
	// OpLte matches field <= value.
	OpLte
	// OpFeatureEq matches the amenity named by Field having Value inside
	// the listing's feature map.
	OpFeatureEq
)

// Column names the conditions refer to.
const (
	FieldCity         = "city"
	FieldPropertyType = "property_type"
	FieldListingType  = "listing_type"
	FieldPrice        = "price"
	FieldArea         = "area"
	FieldUserID       = "user_id"
)

// Condition is a single predicate term. All conditions produced by a
// Filter are combined with logical AND.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter holds the optional search criteria a caller may supply.
// Zero-valued fields contribute no condition: an empty string means
// "any value", a nil range bound leaves that side open, and an amenity
// missing from Amenities expresses no preference (which is distinct
// from an explicit "No").
type Filter struct {
	City         string
	PropertyType string
	ListingType  string
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	Amenities    model.FeatureMap
	ExcludeOwner *uuid.UUID
}

// Build translates the filter into an ordered condition list. Min and
// Max bounds on the same field emit independent conditions, so a
// max-only range can never displace a previously set minimum.
func (f Filter) Build() []Condition {
	conds := make([]Condition, 0, 8)

	if f.ExcludeOwner != nil {
		conds = append(conds, Condition{Field: FieldUserID, Op: OpNe, Value: *f.ExcludeOwner})
	}
	if f.City != "" {
		conds = append(conds, Condition{Field: FieldCity, Op: OpEq, Value: f.City})
	}
	if f.PropertyType != "" {
		conds = append(conds, Condition{Field: FieldPropertyType, Op: OpEq, Value: f.PropertyType})
	}
	if f.ListingType != "" {
		conds = append(conds, Condition{Field: FieldListingType, Op: OpEq, Value: f.ListingType})
	}
	if f.MinPrice != nil {
		conds = append(conds, Condition{Field: FieldPrice, Op: OpGte, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		conds = append(conds, Condition{Field: FieldPrice, Op: OpLte, Value: *f.MaxPrice})
	}
	if f.MinArea != nil {
		conds = append(conds, Condition{Field: FieldArea, Op: OpGte, Value: *f.MinArea})
	}
	if f.MaxArea != nil {
		conds = append(conds, Condition{Field: FieldArea, Op: OpLte, Value: *f.MaxArea})
	}

	// Walk the vocabulary instead of the map for a deterministic order.
	for _, name := range model.FeatureNames {
		if v, ok := f.Amenities[name]; ok {
			conds = append(conds, Condition{Field: name, Op: OpFeatureEq, Value: v})
		}
	}

	return conds
}

// ParseAmenities parses the amenities query parameter. Entries are
// comma-separated amenity names; a bare name constrains the amenity to
// "Yes", a "Name:No" entry constrains it to "No". Unknown names and
// malformed entries are skipped, and amenities not mentioned at all
// stay unconstrained.
func ParseAmenities(raw string) model.FeatureMap {
	if raw == "" {
		return nil
	}

	out := model.FeatureMap{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, value := entry, model.FeatureYes
		if i := strings.IndexByte(entry, ':'); i >= 0 {
			name, value = entry[:i], entry[i+1:]
		}
		if !model.ValidFeature(name) || !model.ValidFeatureValue(value) {
			continue
		}
		out[name] = value
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Float returns a pointer to v, for building range bounds.
func Float(v float64) *float64 {
	return &v
}
