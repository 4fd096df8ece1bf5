package model

// Amenity flag values. Anything else is rejected at parse time.
const (
	FeatureYes = "Yes"
	FeatureNo  = "No"
)

// FeatureMap maps an amenity name to "Yes" or "No". Names absent from
// the map carry no information; they are not the same as "No".
type FeatureMap map[string]string

// FeatureNames is the closed amenity vocabulary a listing may carry.
// The order matches the submission form.
var FeatureNames = []string{
	"Resale", "MaintenanceStaff", "Gymnasium", "SwimmingPool",
	"LandscapedGardens", "JoggingTrack", "RainWaterHarvesting",
	"IndoorGames", "ShoppingMall", "Intercom", "SportsFacility", "ATM",
	"ClubHouse", "School", "24X7Security", "PowerBackup", "CarParking",
	"StaffQuarter", "Cafeteria", "MultipurposeRoom", "Hospital",
	"WashingMachine", "Gasconnection", "AC", "Wifi", "Childrensplayarea",
	"LiftAvailable", "BED", "VaastuCompliant", "Microwave", "GolfCourse",
	"TV", "DiningTable", "Sofa", "Wardrobe", "Refrigerator",
}

var featureSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(FeatureNames))
	for _, name := range FeatureNames {
		s[name] = struct{}{}
	}
	return s
}()

// ValidFeature reports whether name belongs to the amenity vocabulary.
func ValidFeature(name string) bool {
	_, ok := featureSet[name]
	return ok
}

// ValidFeatureValue reports whether v is an accepted flag value.
func ValidFeatureValue(v string) bool {
	return v == FeatureYes || v == FeatureNo
}
