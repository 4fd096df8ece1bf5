package query

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"clearplot/internal/model"
)

// evalConditions interprets the builder's output against a listing the
// same way the store would, so the builder's semantics can be checked
// without a database.
func evalConditions(l model.Listing, conds []Condition) bool {
	for _, c := range conds {
		var ok bool
		switch c.Op {
		case OpEq:
			ok = scalarField(l, c.Field) == c.Value
		case OpNe:
			ok = scalarField(l, c.Field) != c.Value
		case OpGte:
			ok = numericField(l, c.Field) >= c.Value.(float64)
		case OpLte:
			ok = numericField(l, c.Field) <= c.Value.(float64)
		case OpFeatureEq:
			ok = l.Features()[c.Field] == c.Value.(string)
		}
		if !ok {
			return false
		}
	}
	return true
}

func scalarField(l model.Listing, field string) interface{} {
	switch field {
	case FieldCity:
		return l.City
	case FieldPropertyType:
		return l.PropertyType
	case FieldListingType:
		return l.ListingType
	case FieldUserID:
		return l.UserID
	}
	return nil
}

func numericField(l model.Listing, field string) float64 {
	switch field {
	case FieldPrice:
		return l.Price
	case FieldArea:
		return l.Area
	}
	return 0
}

// satisfies is the brute-force reference: each present criterion is
// checked directly, all combined with AND.
func satisfies(l model.Listing, f Filter) bool {
	if f.ExcludeOwner != nil && l.UserID == *f.ExcludeOwner {
		return false
	}
	if f.City != "" && l.City != f.City {
		return false
	}
	if f.PropertyType != "" && l.PropertyType != f.PropertyType {
		return false
	}
	if f.ListingType != "" && l.ListingType != f.ListingType {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.MinArea != nil && l.Area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && l.Area > *f.MaxArea {
		return false
	}
	for name, want := range f.Amenities {
		if l.Features()[name] != want {
			return false
		}
	}
	return true
}

var (
	testCities   = []string{"Pune", "Mumbai", "Bangalore"}
	testTypes    = []string{"Apartment", "Villa", "Plot"}
	testOwners   = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	testFeatures = []string{"Gymnasium", "SwimmingPool", "Wifi", "CarParking"}
)

func randomListing(rng *rand.Rand) model.Listing {
	features := model.FeatureMap{}
	for _, name := range testFeatures {
		switch rng.Intn(3) {
		case 0:
			features[name] = model.FeatureYes
		case 1:
			features[name] = model.FeatureNo
		}
	}
	lt := model.ListingTypeBuy
	if rng.Intn(2) == 0 {
		lt = model.ListingTypeRent
	}
	return model.Listing{
		ID:             uuid.New(),
		UserID:         testOwners[rng.Intn(len(testOwners))],
		ListingType:    lt,
		PropertyType:   testTypes[rng.Intn(len(testTypes))],
		City:           testCities[rng.Intn(len(testCities))],
		Area:           float64(rng.Intn(4000)),
		Price:          float64(rng.Intn(10_000_000)),
		BinaryFeatures: datatypes.NewJSONType(features),
	}
}

func randomFilter(rng *rand.Rand) Filter {
	var f Filter
	if rng.Intn(2) == 0 {
		f.City = testCities[rng.Intn(len(testCities))]
	}
	if rng.Intn(2) == 0 {
		f.PropertyType = testTypes[rng.Intn(len(testTypes))]
	}
	if rng.Intn(2) == 0 {
		f.ListingType = model.ListingTypeRent
	}
	if rng.Intn(2) == 0 {
		f.MinPrice = Float(float64(rng.Intn(10_000_000)))
	}
	if rng.Intn(2) == 0 {
		f.MaxPrice = Float(float64(rng.Intn(10_000_000)))
	}
	if rng.Intn(2) == 0 {
		f.MinArea = Float(float64(rng.Intn(4000)))
	}
	if rng.Intn(2) == 0 {
		f.MaxArea = Float(float64(rng.Intn(4000)))
	}
	if rng.Intn(2) == 0 {
		f.Amenities = model.FeatureMap{}
		for _, name := range testFeatures {
			switch rng.Intn(3) {
			case 0:
				f.Amenities[name] = model.FeatureYes
			case 1:
				f.Amenities[name] = model.FeatureNo
			}
		}
	}
	if rng.Intn(3) == 0 {
		f.ExcludeOwner = &testOwners[rng.Intn(len(testOwners))]
	}
	return f
}

func TestFilterBuild_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	listings := make([]model.Listing, 200)
	for i := range listings {
		listings[i] = randomListing(rng)
	}

	for i := 0; i < 150; i++ {
		f := randomFilter(rng)
		conds := f.Build()
		for _, l := range listings {
			assert.Equal(t, satisfies(l, f), evalConditions(l, conds),
				"filter %+v disagrees with brute force on listing %s", f, l.ID)
		}
	}
}

func TestFilterBuild_RangeBounds(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []Condition
	}{
		{
			name: "min only",
			f:    Filter{MinPrice: Float(5000)},
			want: []Condition{{Field: FieldPrice, Op: OpGte, Value: 5000.0}},
		},
		{
			name: "max only",
			f:    Filter{MaxPrice: Float(9000)},
			want: []Condition{{Field: FieldPrice, Op: OpLte, Value: 9000.0}},
		},
		{
			name: "max does not displace min",
			f:    Filter{MinPrice: Float(5000), MaxPrice: Float(9000)},
			want: []Condition{
				{Field: FieldPrice, Op: OpGte, Value: 5000.0},
				{Field: FieldPrice, Op: OpLte, Value: 9000.0},
			},
		},
		{
			name: "independent area range",
			f:    Filter{MaxArea: Float(1200), MinPrice: Float(100)},
			want: []Condition{
				{Field: FieldPrice, Op: OpGte, Value: 100.0},
				{Field: FieldArea, Op: OpLte, Value: 1200.0},
			},
		},
		{
			name: "empty filter builds no conditions",
			f:    Filter{},
			want: []Condition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Build())
		})
	}
}

func TestFilterBuild_AmenityNoVersusUnset(t *testing.T) {
	yes := model.Listing{BinaryFeatures: datatypes.NewJSONType(model.FeatureMap{"Wifi": model.FeatureYes})}
	no := model.Listing{BinaryFeatures: datatypes.NewJSONType(model.FeatureMap{"Wifi": model.FeatureNo})}

	// No preference: both match.
	unset := Filter{}.Build()
	assert.True(t, evalConditions(yes, unset))
	assert.True(t, evalConditions(no, unset))

	// Explicit "No" is a constraint, not an omission.
	wantNo := Filter{Amenities: model.FeatureMap{"Wifi": model.FeatureNo}}.Build()
	assert.False(t, evalConditions(yes, wantNo))
	assert.True(t, evalConditions(no, wantNo))
}

func TestFilterBuild_OwnershipExclusion(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	mine := model.Listing{UserID: owner}
	theirs := model.Listing{UserID: other}

	conds := Filter{ExcludeOwner: &owner}.Build()
	assert.False(t, evalConditions(mine, conds))
	assert.True(t, evalConditions(theirs, conds))

	anonymous := Filter{}.Build()
	assert.True(t, evalConditions(mine, anonymous))
	assert.True(t, evalConditions(theirs, anonymous))
}

func TestParseAmenities(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.FeatureMap
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "bare names mean yes",
			raw:  "Gymnasium,Wifi",
			want: model.FeatureMap{"Gymnasium": "Yes", "Wifi": "Yes"},
		},
		{
			name: "explicit no",
			raw:  "Gymnasium,SwimmingPool:No",
			want: model.FeatureMap{"Gymnasium": "Yes", "SwimmingPool": "No"},
		},
		{
			name: "unknown names skipped",
			raw:  "HelicopterPad,Wifi",
			want: model.FeatureMap{"Wifi": "Yes"},
		},
		{
			name: "bad values skipped",
			raw:  "Wifi:Maybe",
			want: nil,
		},
		{
			name: "whitespace tolerated",
			raw:  " Wifi , Gymnasium:No ",
			want: model.FeatureMap{"Wifi": "Yes", "Gymnasium": "No"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmenities(tt.raw))
		})
	}
}
