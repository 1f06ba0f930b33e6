package dataset

// WeightClass buckets aircraft by mass and drives the pad height range.
type WeightClass string

const (
	WeightLight  WeightClass = "light"
	WeightMedium WeightClass = "medium"
	WeightHeavy  WeightClass = "heavy"
)

// HeightRange returns the pad height interval (meters) for the class.
func (w WeightClass) HeightRange() (min, max float64) {
	switch w {
	case WeightLight:
		return 0.1, 2.0
	case WeightHeavy:
		return 2.0, 5.0
	default:
		return 1.0, 4.0
	}
}

// Aircraft describes one entry of the aircraft catalog: a typical
// footprint range (meters) and a weight class.
type Aircraft struct {
	Name    string
	MinSize int
	MaxSize int
	Weight  WeightClass
}

// aircraftCatalog covers the rotary-wing and VTOL types the training
// set should represent. Size ranges are typical pad footprints, not
// airframe dimensions.
var aircraftCatalog = []Aircraft{
	{Name: "helicopter", MinSize: 15, MaxSize: 25, Weight: WeightMedium},
	{Name: "tiltrotor", MinSize: 18, MaxSize: 35, Weight: WeightHeavy},
	{Name: "drone", MinSize: 2, MaxSize: 8, Weight: WeightLight},
	{Name: "eVTOL", MinSize: 8, MaxSize: 15, Weight: WeightLight},
	{Name: "urban_air_mobility", MinSize: 10, MaxSize: 20, Weight: WeightMedium},
	{Name: "emergency_helicopter", MinSize: 12, MaxSize: 18, Weight: WeightMedium},
	{Name: "cargo_drone", MinSize: 5, MaxSize: 12, Weight: WeightMedium},
	{Name: "passenger_eVTOL", MinSize: 12, MaxSize: 25, Weight: WeightHeavy},
}
