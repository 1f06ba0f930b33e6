package dataset

import (
	"math"
	"math/rand/v2"
)

// cityCluster anchors generated coordinates near a real metropolitan
// area so positions stay geographically plausible instead of uniform
// noise across the globe.
type cityCluster struct {
	Name   string
	Lng    float64
	Lat    float64
	Radius float64 // max offset in degrees
}

var cityClusters = []cityCluster{
	{"Tokyo", 139.6917, 35.6895, 0.5},
	{"New York", -74.0060, 40.7128, 0.3},
	{"Paris", 2.3522, 48.8566, 0.2},
	{"London", -0.1276, 51.5074, 0.3},
	{"Berlin", 13.4050, 52.5200, 0.2},
	{"Sydney", 151.2093, -33.8688, 0.4},
	{"Los Angeles", -118.2437, 34.0522, 0.5},
	{"Singapore", 103.8198, 1.3521, 0.1},
	{"Dubai", 55.2708, 25.2048, 0.3},
	{"Rio de Janeiro", -43.1729, -22.9068, 0.2},
}

// samplePosition picks a cluster and perturbs its center by a random
// angle and radius. Returns lon/lat rounded to 4 decimal places.
func samplePosition(rng *rand.Rand) (lng, lat float64) {
	c := cityClusters[rng.IntN(len(cityClusters))]

	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * c.Radius

	lng = round(c.Lng+dist*math.Cos(angle), 4)
	lat = round(c.Lat+dist*math.Sin(angle), 4)
	return lng, lat
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
