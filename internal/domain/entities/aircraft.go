package entities

// AircraftCategory classifies airframes for catalog/reporting purposes.
//
// The category does not feed the price directly; pricing reads the baseline
// exterior/interior hours stored on the aircraft record.

type AircraftCategory string

const (
	AircraftCategoryPiston      AircraftCategory = "piston"
	AircraftCategoryTurboprop   AircraftCategory = "turboprop"
	AircraftCategoryLightJet    AircraftCategory = "light_jet"
	AircraftCategoryMidsizeJet  AircraftCategory = "midsize_jet"
	AircraftCategorySuperMidJet AircraftCategory = "super_midsize_jet"
	AircraftCategoryLargeJet    AircraftCategory = "large_jet"
	AircraftCategoryHelicopter  AircraftCategory = "helicopter"
)

// Aircraft is immutable catalog reference data. Quotes reference an aircraft
// by id and never own or mutate it.
//
// Storage model (DynamoDB):
//   - PK: id
type Aircraft struct {
	ID              string           `json:"id"`
	Manufacturer    string           `json:"manufacturer"`
	Model           string           `json:"model"`
	Category        AircraftCategory `json:"category"`
	Seats           int              `json:"seats"`
	SurfaceAreaSqFt float64          `json:"surface_area_sq_ft"`
	ExteriorHours   float64          `json:"exterior_hours"`
	InteriorHours   float64          `json:"interior_hours"`
}

// Label is the human-readable aircraft name used in outbound quote snapshots.
func (a Aircraft) Label() string {
	if a.Manufacturer == "" {
		return a.Model
	}
	return a.Manufacturer + " " + a.Model
}
